package view

import (
	"image"

	"github.com/soocke/media-access-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// AccessLabel is the caption of the access-request control.
const AccessLabel = "Access Camera and Microphone"

// PreviewOptions sizes the inline video preview.
type PreviewOptions struct {
	Width, Height int
	FPS           int
}

// MediaSurface is the Tk side of the media presenter: the access button, the
// video preview, the error text and the loading indicator.
type MediaSurface struct {
	row      int
	onAccess func()
	preview  VideoPreview

	accessBtn  *TButtonWidget
	statusLbl  *TLabelWidget
	loadingLbl *TLabelWidget
	status     string
	loading    string
}

// NewMediaSurface builds the surface in rows row..row+3 of the first column.
// onAccess runs when the access button is pressed.
func NewMediaSurface(row int, opts PreviewOptions, onAccess func()) *MediaSurface {
	s := &MediaSurface{row: row, onAccess: onAccess}
	s.preview = NewVideoPreview(row+3, opts.Width, opts.Height, opts.FPS)
	s.statusLbl = TLabel(Txt(""), Style(theme.StyleErrorLabel), Anchor("w"))
	Grid(s.statusLbl, Row(row+1), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	s.loadingLbl = TLabel(Txt(""), Style(theme.StyleLoadingLabel), Anchor("w"))
	Grid(s.loadingLbl, Row(row+2), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	return s
}

// ShowAccessControl creates or destroys the access button.
func (s *MediaSurface) ShowAccessControl(visible bool) {
	if s == nil {
		return
	}
	switch {
	case visible && s.accessBtn == nil:
		s.accessBtn = TButton(Txt(AccessLabel), Style(theme.StyleAccessButton), Command(func() {
			if s.onAccess != nil {
				s.onAccess()
			}
		}))
		Grid(s.accessBtn, Row(s.row), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	case !visible && s.accessBtn != nil:
		Destroy(s.accessBtn)
		s.accessBtn = nil
	}
}

func (s *MediaSurface) ShowVideo(visible bool) {
	if s == nil || s.preview == nil {
		return
	}
	if visible {
		s.preview.Show()
	} else {
		s.preview.Hide()
	}
}

func (s *MediaSurface) PresentFrame(img image.Image) {
	if s != nil && s.preview != nil {
		s.preview.Update(img)
	}
}

// SetStatus shows the error message; empty text clears it.
func (s *MediaSurface) SetStatus(text string) {
	if s == nil || s.statusLbl == nil || text == s.status {
		return
	}
	s.status = text
	s.statusLbl.Configure(Txt(text))
}

func (s *MediaSurface) SetLoading(text string) {
	if s == nil || s.loadingLbl == nil || text == s.loading {
		return
	}
	s.loading = text
	s.loadingLbl.Configure(Txt(text))
}
