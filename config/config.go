package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/soocke/media-access-go/domain/media"
)

// Capability modes accepted in the config file and on the command line.
const (
	ModeDefault = "default" // leave it to the built-in defaults
	ModeOn      = "on"      // request the kind without constraints
	ModeOff     = "off"     // do not request the kind
	ModeCustom  = "custom"  // request with the constraint fields below
)

// TrackConfig describes how one kind of track (audio or video) is requested.
type TrackConfig struct {
	Mode     string `json:"mode"`
	DeviceID string `json:"device_id,omitempty"`

	// Video
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
	FrameRate float64 `json:"frame_rate,omitempty"`

	// Audio
	SampleRate       int  `json:"sample_rate,omitempty"`
	ChannelCount     int  `json:"channel_count,omitempty"`
	NoiseSuppression bool `json:"noise_suppression,omitempty"`
	EchoCancellation bool `json:"echo_cancellation,omitempty"`
}

// Config holds runtime configuration for the capture window.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`
	Dark  bool `json:"dark"`

	WindowTitle  string `json:"window_title"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`

	// Preview
	PreviewWidth  int `json:"preview_width"`
	PreviewHeight int `json:"preview_height"`
	PreviewFPS    int `json:"preview_fps"`

	Audio TrackConfig `json:"audio"`
	Video TrackConfig `json:"video"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		Dark:          false,
		WindowTitle:   "Media Access",
		WindowWidth:   720,
		WindowHeight:  560,
		PreviewWidth:  640,
		PreviewHeight: 360,
		PreviewFPS:    15,
		Audio:         TrackConfig{Mode: ModeDefault},
		Video:         TrackConfig{Mode: ModeDefault},
	}
}

// ParseMode normalizes a capability mode. Empty input maps to ModeDefault.
func ParseMode(s string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case "", ModeDefault:
		return ModeDefault, nil
	case ModeOn, "true":
		return ModeOn, nil
	case ModeOff, "false":
		return ModeOff, nil
	case ModeCustom:
		return ModeCustom, nil
	default:
		return "", fmt.Errorf("unknown capability mode %q", s)
	}
}

// Validate clamps/normalizes values to safe ranges. An unknown capability
// mode is the only hard error.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if strings.TrimSpace(c.WindowTitle) == "" {
		c.WindowTitle = def.WindowTitle
	}
	if c.WindowWidth < 320 {
		c.WindowWidth = def.WindowWidth
	}
	if c.WindowHeight < 240 {
		c.WindowHeight = def.WindowHeight
	}
	if c.PreviewWidth < 50 {
		c.PreviewWidth = def.PreviewWidth
	}
	if c.PreviewHeight < 50 {
		c.PreviewHeight = def.PreviewHeight
	}
	if c.PreviewFPS <= 0 || c.PreviewFPS > 60 {
		c.PreviewFPS = def.PreviewFPS
	}
	for _, t := range []*TrackConfig{&c.Audio, &c.Video} {
		m, err := ParseMode(t.Mode)
		if err != nil {
			return err
		}
		t.Mode = m
		if t.Width < 0 {
			t.Width = 0
		}
		if t.Height < 0 {
			t.Height = 0
		}
		if t.FrameRate < 0 {
			t.FrameRate = 0
		}
		if t.SampleRate < 0 {
			t.SampleRate = 0
		}
		if t.ChannelCount < 0 || t.ChannelCount > 8 {
			t.ChannelCount = 0
		}
	}
	return nil
}

// Capability converts one track section into a media capability.
func (t TrackConfig) Capability() media.Capability {
	switch t.Mode {
	case ModeOn:
		return media.Enabled()
	case ModeOff:
		return media.Disabled()
	case ModeCustom:
		return media.Constrained(media.TrackConstraints{
			DeviceID:         t.DeviceID,
			Width:            t.Width,
			Height:           t.Height,
			FrameRate:        t.FrameRate,
			SampleRate:       t.SampleRate,
			ChannelCount:     t.ChannelCount,
			NoiseSuppression: t.NoiseSuppression,
			EchoCancellation: t.EchoCancellation,
		})
	default:
		return media.Capability{}
	}
}

// CaptureRequest returns the capture request described by the config.
func (c *Config) CaptureRequest() media.CaptureRequest {
	return media.CaptureRequest{Audio: c.Audio.Capability(), Video: c.Video.Capability()}
}

// Override applies command-line settings. Empty modes keep the file value;
// debug can only switch debugging on.
func (c *Config) Override(debug bool, audio, video string) error {
	if debug {
		c.Debug = true
	}
	for _, o := range []struct {
		val string
		dst *string
	}{{audio, &c.Audio.Mode}, {video, &c.Video.Mode}} {
		if o.val == "" {
			continue
		}
		m, err := ParseMode(o.val)
		if err != nil {
			return err
		}
		*o.dst = m
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
