package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleToFit scales src so that it fits within maxW x maxH preserving aspect ratio.
// If the source already fits, the original is returned.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	// Linear is a good trade-off for a live preview refreshed several times a second.
	return imaging.Fit(src, maxW, maxH, imaging.Linear)
}

// Snapshot returns an independent copy of img, or nil for an empty image.
// Frames from capture drivers are only valid until released; the preview keeps copies.
func Snapshot(img image.Image) image.Image {
	if img == nil || img.Bounds().Empty() {
		return nil
	}
	return imaging.Clone(img)
}

// Placeholder returns a blank frame shown before the first video frame arrives.
func Placeholder(w, h int) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.New(w, h, image.Black.C)
}
