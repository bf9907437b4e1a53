package view

import (
	"image"
	"time"

	"github.com/soocke/media-access-go/ui/images"
	"github.com/soocke/media-access-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// VideoPreview draws frames of the bound stream inline in the window.
// The label exists only while shown; it plays as soon as it is shown.
type VideoPreview interface {
	Show()
	Hide()
	Update(img image.Image)
}

type videoPreview struct {
	row    int
	maxW   int
	maxH   int
	minGap time.Duration
	label  *TLabelWidget
	photo  *Img // current Tk photo, deleted on replacement
	lastAt time.Time
}

const (
	minPreviewW = 50
	minPreviewH = 50
)

// NewVideoPreview returns a hidden preview placed at row. fps caps how often
// a new photo is created; 0 means every frame.
func NewVideoPreview(row, maxW, maxH, fps int) VideoPreview {
	if maxW < minPreviewW {
		maxW = minPreviewW
	}
	if maxH < minPreviewH {
		maxH = minPreviewH
	}
	v := &videoPreview{row: row, maxW: maxW, maxH: maxH}
	if fps > 0 {
		v.minGap = time.Second / time.Duration(fps)
	}
	return v
}

func (v *videoPreview) Show() {
	if v.label != nil {
		return
	}
	v.setPhoto(images.Placeholder(v.maxW, v.maxH))
	v.label = TLabel(Image(v.photo), Style(theme.StyleVideoLabel))
	Grid(v.label, Row(v.row), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	v.lastAt = time.Time{}
}

func (v *videoPreview) Hide() {
	if v.label == nil {
		return
	}
	Destroy(v.label)
	v.label = nil
	if v.photo != nil {
		v.photo.Delete()
		v.photo = nil
	}
}

func (v *videoPreview) Update(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	now := time.Now()
	if v.minGap > 0 && now.Sub(v.lastAt) < v.minGap {
		return
	}
	v.lastAt = now
	v.setPhoto(images.ScaleToFit(img, v.maxW, v.maxH))
	v.label.Configure(Image(v.photo))
}

// setPhoto replaces the current photo, disposing the old pixel buffer.
func (v *videoPreview) setPhoto(img image.Image) {
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(images.EncodePNG(img)))
}
