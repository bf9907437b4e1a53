package media

// CapabilityMode tells how a media kind is requested.
type CapabilityMode int

const (
	// CapabilityUnset means the caller did not say; defaults are substituted.
	CapabilityUnset CapabilityMode = iota
	// CapabilityOff means the kind is not requested.
	CapabilityOff
	// CapabilityOn is an unconstrained request for the kind.
	CapabilityOn
	// CapabilityConstrained carries a constraint object passed through verbatim.
	CapabilityConstrained
)

func (m CapabilityMode) String() string {
	switch m {
	case CapabilityUnset:
		return "unset"
	case CapabilityOff:
		return "off"
	case CapabilityOn:
		return "on"
	case CapabilityConstrained:
		return "constrained"
	default:
		return "unknown"
	}
}

// TrackConstraints describes acceptable capture parameters for one kind.
// Zero numeric fields are left to the driver.
type TrackConstraints struct {
	DeviceID string

	// Video
	Width     int
	Height    int
	FrameRate float64

	// Audio
	SampleRate       int
	ChannelCount     int
	NoiseSuppression bool
	EchoCancellation bool
}

// Capability is the per-kind part of a capture request. The zero value is unset.
type Capability struct {
	Mode        CapabilityMode
	Constraints TrackConstraints
}

// Enabled requests a kind without constraints.
func Enabled() Capability { return Capability{Mode: CapabilityOn} }

// Disabled excludes a kind from the request.
func Disabled() Capability { return Capability{Mode: CapabilityOff} }

// Constrained requests a kind with the given constraints.
func Constrained(c TrackConstraints) Capability {
	return Capability{Mode: CapabilityConstrained, Constraints: c}
}

// Requested reports whether the kind should be captured.
func (c Capability) Requested() bool {
	return c.Mode == CapabilityOn || c.Mode == CapabilityConstrained
}

// CaptureRequest is the caller-supplied audio/video request.
type CaptureRequest struct {
	Audio Capability
	Video Capability
}

// ResolvedConstraints is what gets handed to the platform. Neither field is unset.
type ResolvedConstraints struct {
	Audio Capability
	Video Capability
}

// DefaultVideoConstraints returns ideal 1280x720 at 30fps.
func DefaultVideoConstraints() TrackConstraints {
	return TrackConstraints{Width: 1280, Height: 720, FrameRate: 30}
}

// DefaultAudioConstraints enables noise suppression and echo cancellation.
func DefaultAudioConstraints() TrackConstraints {
	return TrackConstraints{NoiseSuppression: true, EchoCancellation: true}
}

// Resolve substitutes defaults for unset kinds and passes everything else through.
func Resolve(req CaptureRequest) ResolvedConstraints {
	out := ResolvedConstraints{Audio: req.Audio, Video: req.Video}
	if out.Audio.Mode == CapabilityUnset {
		out.Audio = Constrained(DefaultAudioConstraints())
	}
	if out.Video.Mode == CapabilityUnset {
		out.Video = Constrained(DefaultVideoConstraints())
	}
	return out
}
