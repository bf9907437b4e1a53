package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestScaleToFit_Downscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1280, 720))
	out := ScaleToFit(src, 400, 225)
	b := out.Bounds()
	if b.Dx() > 400 || b.Dy() > 225 {
		t.Fatalf("scaled bounds too large: %v", b)
	}
	if b.Dx() != 400 || b.Dy() != 225 {
		t.Fatalf("aspect ratio not preserved: %v", b)
	}
}

func TestScaleToFit_KeepsSmall(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if out := ScaleToFit(src, 400, 225); out != image.Image(src) {
		t.Fatal("an image that fits should be returned unchanged")
	}
	if ScaleToFit(nil, 10, 10) != nil {
		t.Fatal("nil in, nil out")
	}
}

func TestSnapshot_IsIndependent(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 200, A: 255})
	snap := Snapshot(src)
	src.Set(0, 0, color.RGBA{G: 200, A: 255})
	r, g, _, _ := snap.At(0, 0).RGBA()
	if r>>8 != 200 || g != 0 {
		t.Fatalf("snapshot changed with its source: r=%d g=%d", r>>8, g>>8)
	}
	if Snapshot(image.NewRGBA(image.Rect(0, 0, 0, 0))) != nil {
		t.Fatal("empty image should snapshot to nil")
	}
}

func TestEncodePNG_Decodes(t *testing.T) {
	data := EncodePNG(Placeholder(8, 4))
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if EncodePNG(nil) != nil {
		t.Fatal("nil image should encode to nil")
	}
}
