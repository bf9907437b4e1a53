package device

import (
	"sync"

	"github.com/pion/mediadevices"

	"github.com/soocke/media-access-go/domain/media"
)

type stream struct {
	id     string
	tracks []media.Track
}

func wrapStream(id string, ms mediadevices.MediaStream) *stream {
	s := &stream{id: id}
	if ms == nil {
		return s
	}
	for _, t := range ms.GetVideoTracks() {
		s.tracks = append(s.tracks, newTrack(t, media.KindVideo))
	}
	for _, t := range ms.GetAudioTracks() {
		s.tracks = append(s.tracks, newTrack(t, media.KindAudio))
	}
	return s
}

func (s *stream) ID() string { return s.id }

func (s *stream) Tracks() []media.Track {
	out := make([]media.Track, len(s.tracks))
	copy(out, s.tracks)
	return out
}

// closer is the part of mediadevices.Track the wrapper needs.
type closer interface {
	ID() string
	Close() error
}

type track struct {
	src  closer
	kind media.TrackKind

	mu      sync.Mutex
	stopped bool
}

func newTrack(src closer, kind media.TrackKind) *track {
	return &track{src: src, kind: kind}
}

func (t *track) ID() string { return t.src.ID() }

func (t *track) Kind() media.TrackKind { return t.kind }

// Stop closes the driver track once; later calls return nil.
func (t *track) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return nil
	}
	t.stopped = true
	return t.src.Close()
}

// NewFrameReader implements media.VideoSource for video tracks. It returns nil
// for audio tracks.
func (t *track) NewFrameReader() media.FrameReader {
	vt, ok := t.src.(*mediadevices.VideoTrack)
	if !ok {
		return nil
	}
	return vt.NewReader(false)
}
