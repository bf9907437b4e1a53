package presenter

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/media-access-go/domain/media"
	"github.com/soocke/media-access-go/ui/model"
)

// LoadingText is shown while an acquisition attempt is in flight.
const LoadingText = "Loading..."

// MediaController narrows what the presenter needs from media.Controller.
type MediaController interface {
	Initiate(ctx context.Context) media.State
	Reacquire(ctx context.Context) media.State
	State() media.State
	Close() error
}

var _ MediaController = (*media.Controller)(nil)

// MediaView is the surface driven by the presenter. Every method is called
// from Tick, Mount or Unmount, i.e. on the UI thread.
type MediaView interface {
	ShowAccessControl(visible bool)
	ShowVideo(visible bool)
	PresentFrame(img image.Image)
	SetStatus(text string)
	SetLoading(text string)
}

// Runner executes an acquisition attempt off the UI thread.
type Runner func(func())

// MediaPresenter renders the controller's acquisition state. It fires one
// automatic attempt on mount, exposes Retry for the access button and owns the
// preview binding of the active stream.
type MediaPresenter struct {
	ctrl   MediaController
	view   MediaView
	logger *slog.Logger
	run    Runner
	latch  model.MountLatch

	ctx    context.Context
	cancel context.CancelFunc

	binding   *StreamBinding
	rendered  uint64
	hasRender bool
	frameSeq  uint64
}

// NewMediaPresenter returns a presenter whose attempts run on new goroutines.
func NewMediaPresenter(ctrl MediaController, view MediaView, logger *slog.Logger) *MediaPresenter {
	return NewMediaPresenterWithRunner(ctrl, view, logger, func(f func()) { go f() })
}

// NewMediaPresenterWithRunner allows callers (tests) to control how attempts run.
func NewMediaPresenterWithRunner(ctrl MediaController, view MediaView, logger *slog.Logger, run Runner) *MediaPresenter {
	ctx, cancel := context.WithCancel(context.Background())
	return &MediaPresenter{ctrl: ctrl, view: view, logger: logger, run: run, ctx: ctx, cancel: cancel}
}

// Mount triggers the automatic attempt. Only the first call has any effect,
// however often the surface is built or rendered.
func (p *MediaPresenter) Mount() {
	if p == nil || p.ctrl == nil {
		return
	}
	if !p.latch.TryStart() {
		return
	}
	p.initiate("mount")
}

// Retry is the access-request control. Every call starts a new attempt;
// overlapping attempts are not suppressed.
func (p *MediaPresenter) Retry() {
	if p == nil || p.ctrl == nil {
		return
	}
	p.initiate("retry")
}

// Reacquire drops the preview and the held stream, then starts a new
// attempt. Used when the capture request changed while a stream is live.
func (p *MediaPresenter) Reacquire() {
	if p == nil || p.ctrl == nil {
		return
	}
	if p.binding != nil {
		p.unbind()
		p.frameSeq = 0
	}
	if p.logger != nil {
		p.logger.Debug("presenter.initiate", "trigger", "reacquire")
	}
	ctx := p.ctx
	p.run(func() { p.ctrl.Reacquire(ctx) })
}

// Mounted reports whether the automatic attempt has been fired.
func (p *MediaPresenter) Mounted() bool {
	if p == nil {
		return false
	}
	return p.latch.Started()
}

// Binding returns the current preview binding, if any.
func (p *MediaPresenter) Binding() *StreamBinding {
	if p == nil {
		return nil
	}
	return p.binding
}

func (p *MediaPresenter) initiate(trigger string) {
	if p.logger != nil {
		p.logger.Debug("presenter.initiate", "trigger", trigger)
	}
	ctx := p.ctx
	p.run(func() { p.ctrl.Initiate(ctx) })
}

// Tick renders the latest state when it changed and pushes new preview frames.
func (p *MediaPresenter) Tick(now time.Time) {
	if p == nil || p.ctrl == nil || p.view == nil {
		return
	}
	st := p.ctrl.State()
	if !p.hasRender || st.Generation != p.rendered {
		p.render(st)
		p.rendered = st.Generation
		p.hasRender = true
	}
	p.pushFrame()
}

func (p *MediaPresenter) render(st media.State) {
	p.syncBinding(st.Stream)
	p.view.ShowVideo(st.Stream != nil)
	p.view.ShowAccessControl(st.Stream == nil)
	p.view.SetStatus(st.Message())
	if st.Loading {
		p.view.SetLoading(LoadingText)
	} else {
		p.view.SetLoading("")
	}
}

// syncBinding rebinds the preview when the active stream changed.
func (p *MediaPresenter) syncBinding(s media.Stream) {
	if p.binding != nil && p.binding.Stream() == s {
		return
	}
	if p.binding != nil {
		p.unbind()
		p.frameSeq = 0
	}
	if s != nil {
		p.binding = Bind(s, p.logger)
		if p.logger != nil {
			p.logger.Info("preview.bind", "stream", s.ID())
		}
	}
}

func (p *MediaPresenter) unbind() {
	b := p.binding
	p.binding = nil
	err := b.Unbind()
	if p.logger == nil {
		return
	}
	st := b.Stats()
	if err != nil {
		p.logger.Warn("preview.unbind", "stream", b.Stream().ID(), "frames", st.Frames, "read_errors", st.Errors, "error", err)
		return
	}
	p.logger.Info("preview.unbind", "stream", b.Stream().ID(), "frames", st.Frames, "read_errors", st.Errors)
}

func (p *MediaPresenter) pushFrame() {
	if p.binding == nil {
		return
	}
	img, seq := p.binding.Latest()
	if img == nil || seq == p.frameSeq {
		return
	}
	p.frameSeq = seq
	p.view.PresentFrame(img)
}

// Unmount tears the surface down: unbinds the preview and releases the
// controller's stream. Idempotent.
func (p *MediaPresenter) Unmount() {
	if p == nil {
		return
	}
	if p.cancel != nil {
		p.cancel()
	}
	if p.binding != nil {
		p.unbind()
	}
	if p.ctrl != nil {
		if err := p.ctrl.Close(); err != nil && p.logger != nil {
			p.logger.Warn("media.close", "error", err)
		}
	}
	if p.view != nil {
		p.view.ShowVideo(false)
	}
}
