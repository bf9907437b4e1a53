package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soocke/media-access-go/config"
)

// Field ids of the constraints form.
const (
	FieldVideoMode   = "videoMode"
	FieldVideoDevice = "videoDevice"
	FieldWidth       = "width"
	FieldHeight      = "height"
	FieldFrameRate   = "frameRate"
	FieldAudioMode   = "audioMode"
	FieldAudioDevice = "audioDevice"
	FieldSampleRate  = "sampleRate"
	FieldChannels    = "channelCount"
	FieldNoise       = "noiseSuppression"
	FieldEcho        = "echoCancellation"
)

// FormField describes one row of the constraints form.
type FormField struct {
	ID    string
	Label string
	// Choices is non-empty for fields edited with a dropdown.
	Choices []string
}

// Modes lists the capability modes offered by the form.
var Modes = []string{config.ModeDefault, config.ModeOn, config.ModeOff, config.ModeCustom}

// ConstraintsForm maps a config to editable text values and back.
type ConstraintsForm struct {
	Fields []FormField
}

// NewConstraintsForm returns the form layout. Device choices start with an
// empty entry meaning "any device".
func NewConstraintsForm(videoDevices, audioDevices []string) *ConstraintsForm {
	vd := append([]string{""}, videoDevices...)
	ad := append([]string{""}, audioDevices...)
	return &ConstraintsForm{Fields: []FormField{
		{ID: FieldVideoMode, Label: "Video", Choices: Modes},
		{ID: FieldVideoDevice, Label: "Camera", Choices: vd},
		{ID: FieldWidth, Label: "Width"},
		{ID: FieldHeight, Label: "Height"},
		{ID: FieldFrameRate, Label: "Frame Rate"},
		{ID: FieldAudioMode, Label: "Audio", Choices: Modes},
		{ID: FieldAudioDevice, Label: "Microphone", Choices: ad},
		{ID: FieldSampleRate, Label: "Sample Rate"},
		{ID: FieldChannels, Label: "Channels"},
		{ID: FieldNoise, Label: "Noise Suppression (true/false)"},
		{ID: FieldEcho, Label: "Echo Cancellation (true/false)"},
	}}
}

// Values renders cfg into text values keyed by field id.
func (f *ConstraintsForm) Values(cfg *config.Config) map[string]string {
	v := make(map[string]string, 11)
	if cfg == nil {
		return v
	}
	v[FieldVideoMode] = cfg.Video.Mode
	v[FieldVideoDevice] = cfg.Video.DeviceID
	v[FieldWidth] = intText(cfg.Video.Width)
	v[FieldHeight] = intText(cfg.Video.Height)
	v[FieldFrameRate] = floatText(cfg.Video.FrameRate)
	v[FieldAudioMode] = cfg.Audio.Mode
	v[FieldAudioDevice] = cfg.Audio.DeviceID
	v[FieldSampleRate] = intText(cfg.Audio.SampleRate)
	v[FieldChannels] = intText(cfg.Audio.ChannelCount)
	v[FieldNoise] = strconv.FormatBool(cfg.Audio.NoiseSuppression)
	v[FieldEcho] = strconv.FormatBool(cfg.Audio.EchoCancellation)
	return v
}

// Apply parses values on top of a copy of cfg and validates the result.
// Unparseable numbers keep their previous value; an empty number clears it.
func (f *ConstraintsForm) Apply(cfg config.Config, values map[string]string) (config.Config, error) {
	get := func(id string) (string, bool) {
		s, ok := values[id]
		return strings.TrimSpace(s), ok
	}
	assignInt := func(id string, dst *int) {
		if s, ok := get(id); ok {
			if s == "" {
				*dst = 0
			} else if i, ok := parseIntField(s); ok {
				*dst = i
			}
		}
	}
	assignFloat := func(id string, dst *float64) {
		if s, ok := get(id); ok {
			if s == "" {
				*dst = 0
			} else if x, ok := parseFloatField(s); ok {
				*dst = x
			}
		}
	}
	assignBool := func(id string, dst *bool) {
		if s, ok := get(id); ok {
			if b, ok := parseBoolLoose(s); ok {
				*dst = b
			}
		}
	}
	if s, ok := get(FieldVideoMode); ok {
		cfg.Video.Mode = s
	}
	if s, ok := get(FieldVideoDevice); ok {
		cfg.Video.DeviceID = s
	}
	assignInt(FieldWidth, &cfg.Video.Width)
	assignInt(FieldHeight, &cfg.Video.Height)
	assignFloat(FieldFrameRate, &cfg.Video.FrameRate)
	if s, ok := get(FieldAudioMode); ok {
		cfg.Audio.Mode = s
	}
	if s, ok := get(FieldAudioDevice); ok {
		cfg.Audio.DeviceID = s
	}
	assignInt(FieldSampleRate, &cfg.Audio.SampleRate)
	assignInt(FieldChannels, &cfg.Audio.ChannelCount)
	assignBool(FieldNoise, &cfg.Audio.NoiseSuppression)
	assignBool(FieldEcho, &cfg.Audio.EchoCancellation)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("constraints: %w", err)
	}
	return cfg, nil
}

func intText(i int) string {
	if i == 0 {
		return ""
	}
	return strconv.Itoa(i)
}

func floatText(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parsing helpers (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
