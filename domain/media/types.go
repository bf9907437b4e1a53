package media

import (
	"context"
	"image"
)

// TrackKind identifies the media carried by a track.
type TrackKind int

const (
	KindAudio TrackKind = iota + 1
	KindVideo
)

func (k TrackKind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Track is a single audio or video channel of a Stream. Stop releases the
// underlying device and must be a no-op once the track is already stopped.
type Track interface {
	ID() string
	Kind() TrackKind
	Stop() error
}

// Stream is a live capture handle composed of zero or more tracks.
type Stream interface {
	ID() string
	Tracks() []Track
}

// FrameReader yields decoded video frames. The release func returned with a
// frame hands its buffer back to the driver; the image must not be used after.
type FrameReader interface {
	Read() (img image.Image, release func(), err error)
}

// VideoSource is implemented by video tracks that can feed a preview.
type VideoSource interface {
	NewFrameReader() FrameReader
}

// Platform is the capture API the controller negotiates with.
type Platform interface {
	// Supported reports whether capture is available at all.
	Supported() bool
	// GetUserMedia asks for a live stream satisfying the constraints.
	GetUserMedia(ctx context.Context, c ResolvedConstraints) (Stream, error)
}

// State is a snapshot of the acquisition state. In steady state at most one
// of Stream and Err is set; both are nil before the first attempt.
type State struct {
	Stream           Stream
	Err              *AcquisitionError
	Loading          bool
	PermissionDenied bool
	// Generation increases on every mutation.
	Generation uint64
}

// Active reports whether a live stream is held.
func (s State) Active() bool { return s.Stream != nil }

// Message returns the user-facing error text or "".
func (s State) Message() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Message
}
