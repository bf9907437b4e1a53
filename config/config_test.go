package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/media-access-go/domain/media"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.Debug = true
	cfg.Dark = true
	cfg.Video = TrackConfig{Mode: ModeCustom, Width: 640, Height: 480, FrameRate: 24}
	cfg.Audio = TrackConfig{Mode: ModeOff}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoad_DarkFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"dark": true, "window_title": "Cam"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Dark || cfg.WindowTitle != "Cam" {
		t.Fatalf("dark flag not loaded: %+v", cfg)
	}
	if DefaultConfig().Dark {
		t.Fatal("light theme is the default")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if cfg == nil || cfg.WindowTitle != DefaultConfig().WindowTitle {
		t.Fatal("defaults should be returned alongside the error")
	}
}

func TestValidate_Clamps(t *testing.T) {
	cfg := &Config{PreviewFPS: 500, Video: TrackConfig{Mode: "ON", Width: -3, ChannelCount: 99}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	def := DefaultConfig()
	if cfg.WindowTitle != def.WindowTitle || cfg.WindowWidth != def.WindowWidth || cfg.PreviewFPS != def.PreviewFPS {
		t.Fatalf("window/preview not reset: %+v", cfg)
	}
	if cfg.Video.Mode != ModeOn || cfg.Video.Width != 0 || cfg.Video.ChannelCount != 0 {
		t.Fatalf("video section not normalized: %+v", cfg.Video)
	}
	if cfg.Audio.Mode != ModeDefault {
		t.Fatalf("empty mode should become default, got %q", cfg.Audio.Mode)
	}

	bad := &Config{Audio: TrackConfig{Mode: "sometimes"}}
	if err := bad.Validate(); err == nil {
		t.Fatal("unknown mode should fail validation")
	}
}

func TestCaptureRequest(t *testing.T) {
	tests := []struct {
		name string
		tc   TrackConfig
		want media.Capability
	}{
		{"default", TrackConfig{Mode: ModeDefault}, media.Capability{}},
		{"on", TrackConfig{Mode: ModeOn, Width: 100}, media.Enabled()},
		{"off", TrackConfig{Mode: ModeOff}, media.Disabled()},
		{"custom", TrackConfig{Mode: ModeCustom, Width: 320, Height: 240, DeviceID: "cam0"},
			media.Constrained(media.TrackConstraints{DeviceID: "cam0", Width: 320, Height: 240})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tc.Capability(); got != tt.want {
				t.Fatalf("Capability() = %+v, want %+v", got, tt.want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Audio.Mode = ModeOff
	req := cfg.CaptureRequest()
	if req.Audio != media.Disabled() || req.Video != (media.Capability{}) {
		t.Fatalf("CaptureRequest() = %+v", req)
	}
}

func TestOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Video.Mode = ModeCustom
	if err := cfg.Override(true, "OFF", ""); err != nil {
		t.Fatalf("Override: %v", err)
	}
	if !cfg.Debug || cfg.Audio.Mode != ModeOff || cfg.Video.Mode != ModeCustom {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if err := cfg.Override(false, "", "sideways"); err == nil {
		t.Fatal("bad mode should be rejected")
	}
	if !cfg.Debug {
		t.Fatal("debug must not be switched off by an absent flag")
	}
}
