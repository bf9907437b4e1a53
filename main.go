package main

import (
	"log/slog"
	"os"

	cli "github.com/jawher/mow.cli"

	"github.com/soocke/media-access-go/app"
	"github.com/soocke/media-access-go/config"
	"github.com/soocke/media-access-go/device/drivers"
)

const (
	appName = "media-access"
	appDesc = "camera and microphone access window"
)

func main() {
	cmd := cli.App(appName, appDesc)

	cfgPath := cmd.String(cli.StringOpt{
		Name:   "c config",
		Desc:   "config.json location",
		EnvVar: "MEDIA_ACCESS_CONFIG",
		Value:  "config.json",
	})

	debugOn := cmd.Bool(cli.BoolOpt{
		Name:   "d debug",
		Desc:   "debug logging and runtime diagnostics",
		EnvVar: "MEDIA_ACCESS_DEBUG",
		Value:  false,
	})

	darkOn := cmd.Bool(cli.BoolOpt{
		Name:   "dark",
		Desc:   "dark window theme",
		EnvVar: "MEDIA_ACCESS_DARK",
		Value:  false,
	})

	audio := cmd.String(cli.StringOpt{
		Name:   "audio",
		Desc:   "audio capability: default, on, off or custom (overrides the config file)",
		EnvVar: "MEDIA_ACCESS_AUDIO",
		Value:  "",
	})

	video := cmd.String(cli.StringOpt{
		Name:   "video",
		Desc:   "video capability: default, on, off or custom (overrides the config file)",
		EnvVar: "MEDIA_ACCESS_VIDEO",
		Value:  "",
	})

	cmd.Action = func() {
		cfg, err := config.Load(*cfgPath)
		if oerr := cfg.Override(*debugOn, *audio, *video); oerr != nil {
			NewLogger(slog.LevelInfo).Error("invalid command line", "error", oerr)
			cli.Exit(2)
		}
		if *darkOn {
			cfg.Dark = true
		}

		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		logger := NewLogger(level)
		if err != nil {
			logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
		}
		logger.Info("starting", "config", *cfgPath, "drivers", drivers.Linked,
			"audio", cfg.Audio.Mode, "video", cfg.Video.Mode)

		c := app.BuildContainer(cfg, *cfgPath, logger, drivers.Linked)
		app.NewCaptureWindow(c).Start()
	}

	if err := cmd.Run(os.Args); err != nil {
		NewLogger(slog.LevelInfo).Error("exit", "error", err)
		os.Exit(1)
	}
}
