package app

import (
	"log/slog"

	"github.com/soocke/media-access-go/config"
	"github.com/soocke/media-access-go/device"
	"github.com/soocke/media-access-go/domain/media"
	"github.com/soocke/media-access-go/ui/model"
	"github.com/soocke/media-access-go/ui/view"
)

// Container assembles models, services and the root view. Presenters are
// created once the view is built, since they drive its widgets.
type Container struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Platform   *device.Platform
	Controller *media.Controller
	Live       *model.LiveModel
	Form       *model.ConstraintsForm
	RootView   *view.RootView
}

// BuildContainer constructs all components. supported reports whether capture
// drivers are linked in. Side-effects limited to device enumeration.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, supported bool) *Container {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &Container{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Platform = device.NewPlatform(logger, supported)
	c.Controller = media.NewController(c.Platform, cfg.CaptureRequest(), logger)
	c.Live = model.NewLiveModel()
	var videoIDs, audioIDs []string
	if supported {
		videoIDs = c.Platform.DeviceIDs(media.KindVideo)
		audioIDs = c.Platform.DeviceIDs(media.KindAudio)
	}
	c.Form = model.NewConstraintsForm(videoIDs, audioIDs)
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	return c
}
