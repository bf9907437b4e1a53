package presenter

import (
	"time"

	"github.com/soocke/media-access-go/ui/model"
)

// StreamSource reports the id of the stream currently bound to the preview.
type StreamSource interface{ BoundStreamID() string }

// LiveView displays formatted live and total durations.
type LiveView interface {
	SetLive(live, total time.Duration)
}

// LivePresenter formats live and total stream durations from the model to the view.
type LivePresenter struct {
	live   *model.LiveModel
	source StreamSource
	view   LiveView
}

// NewLivePresenter returns a new LivePresenter.
func NewLivePresenter(live *model.LiveModel, source StreamSource, view LiveView) *LivePresenter {
	return &LivePresenter{live: live, source: source, view: view}
}

// Tick advances the live model and pushes values to the view.
func (p *LivePresenter) Tick(now time.Time) {
	if p == nil || p.live == nil || p.source == nil || p.view == nil {
		return
	}
	p.live.OnTick(p.source.BoundStreamID(), now)
	l, t := p.live.Values()
	p.view.SetLive(l, t)
}

// BoundStreamID implements StreamSource for the media presenter.
func (p *MediaPresenter) BoundStreamID() string {
	if p == nil || p.binding == nil || p.binding.Stream() == nil {
		return ""
	}
	return p.binding.Stream().ID()
}
