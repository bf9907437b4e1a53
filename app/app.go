package app

import (
	"context"
	"fmt"
	"time"

	tk "modernc.org/tk9.0"

	"github.com/soocke/media-access-go/config"
	"github.com/soocke/media-access-go/debug"
	"github.com/soocke/media-access-go/ui/presenter"
	"github.com/soocke/media-access-go/ui/theme"
	"github.com/soocke/media-access-go/ui/view"
)

const (
	tick          = 40 * time.Millisecond
	debugInterval = 5 * time.Second
)

// CaptureWindow runs the capture window on the Tk event loop.
type CaptureWindow struct {
	c       *Container
	media   *presenter.MediaPresenter
	live    *presenter.LivePresenter
	loop    *presenter.Loop
	afterID string
	stop    context.CancelFunc
	exited  bool
}

func NewCaptureWindow(c *Container) *CaptureWindow {
	return &CaptureWindow{c: c}
}

// Start builds the window, fires the automatic capture attempt and blocks
// until the window is closed.
func (a *CaptureWindow) Start() {
	cfg := a.c.Config
	tk.App.WmTitle(cfg.WindowTitle)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	theme.SetDark(cfg.Dark)

	a.c.RootView.Build(a.c.Form, view.Handlers{
		OnAccess: func() { a.media.Retry() },
		OnApply:  a.applyConstraints,
		OnExit:   a.exitHandler,
	})
	a.media = presenter.NewMediaPresenter(a.c.Controller, a.c.RootView.Surface, a.c.Logger)
	a.live = presenter.NewLivePresenter(a.c.Live, a.media, a.c.RootView.Live)
	a.loop = presenter.NewLoop(a.media, a.live, a.scheduleUpdate)

	ctx, cancel := context.WithCancel(context.Background())
	a.stop = cancel
	if cfg.Debug {
		debug.StartGoroutineLogger(ctx, debugInterval, a.c.Logger, a.c.Controller.TrackCount)
		debug.StartMemLogger(ctx, debugInterval, a.c.Logger, a.c.Controller.TrackCount)
	}

	a.media.Mount()
	a.scheduleUpdate()
	tk.App.Wait()
}

// applyConstraints hands an edited config to the controller. A live stream
// is released and re-acquired so the new constraints take effect.
func (a *CaptureWindow) applyConstraints(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if !a.c.Controller.SetRequest(cfg.CaptureRequest()) {
		return
	}
	if a.c.Logger != nil {
		a.c.Logger.Info("constraints.applied", "audio", cfg.Audio.Mode, "video", cfg.Video.Mode)
	}
	if a.c.Controller.State().Stream != nil {
		a.media.Reacquire()
	}
}

func (a *CaptureWindow) exitHandler() {
	if a.exited {
		return
	}
	a.exited = true
	if a.afterID != "" {
		tk.TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.media.Unmount()
	if a.stop != nil {
		a.stop()
	}
	tk.Destroy(tk.App)
}

func (a *CaptureWindow) scheduleUpdate() {
	if a.exited {
		return
	}
	// TclAfter keeps every widget update on Tk's event loop thread.
	a.afterID = tk.TclAfter(tick, func() { a.loop.Tick() })
}
