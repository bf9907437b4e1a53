package view

import (
	"log/slog"

	"github.com/soocke/media-access-go/config"
	"github.com/soocke/media-access-go/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level layout: live stats and exit on the first
// row, the media surface on the left and the constraints panel on the right.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Live        LiveStats
	Surface     *MediaSurface
	Constraints ConstraintsPanel
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Handlers are the user actions wired by the app.
type Handlers struct {
	OnAccess func()
	OnApply  func(cfg *config.Config)
	OnExit   func()
}

// Build constructs the layout. form describes the constraints panel.
func (rv *RootView) Build(form *model.ConstraintsForm, h Handlers) {
	if rv == nil {
		return
	}
	top := Frame()
	Grid(top, Row(0), Column(0), Columnspan(5), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.Live = NewLiveStats(top, 0, 0)
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(top), Row(0), Column(2), Sticky("e"), Padx("0.2m"), Pady("0.2m"))

	preview := PreviewOptions{}
	if rv.cfg != nil {
		preview = PreviewOptions{Width: rv.cfg.PreviewWidth, Height: rv.cfg.PreviewHeight, FPS: rv.cfg.PreviewFPS}
	}
	rv.Surface = NewMediaSurface(1, preview, h.OnAccess)

	if form != nil && rv.cfg != nil {
		rv.Constraints = NewConstraintsPanel(rv.cfg, rv.cfgPath, form, rv.logger, h.OnApply)
		rv.Constraints.Build(1)
	}
}
