package presenter

import (
	"errors"
	"image"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/soocke/media-access-go/domain/media"
	"github.com/soocke/media-access-go/ui/images"
)

// readRetryDelay throttles the reader after a transient read error.
const readRetryDelay = 20 * time.Millisecond

type boundFrame struct {
	img      image.Image
	sequence uint64
}

// BindingStats summarises the reader loop for instrumentation.
type BindingStats struct {
	Frames    uint64
	Errors    uint64
	LastFrame time.Time
}

// StreamBinding attaches a stream to the video preview. It pulls frames from the
// first video track on its own goroutine and keeps only the newest copy.
// Unbind stops the reader and releases the stream's tracks.
type StreamBinding struct {
	stream media.Stream
	logger *slog.Logger

	latest   atomic.Pointer[boundFrame]
	sequence atomic.Uint64
	errors   atomic.Uint64
	lastAt   atomic.Int64 // unix nanos of the newest frame
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Bind starts reading frames from s. Streams without a readable video track
// bind fine but never produce frames.
func Bind(s media.Stream, logger *slog.Logger) *StreamBinding {
	b := &StreamBinding{stream: s, logger: logger, stop: make(chan struct{}), done: make(chan struct{})}
	reader := videoReader(s)
	if reader == nil {
		close(b.done)
		return b
	}
	go b.loop(reader)
	return b
}

// Stream returns the bound stream.
func (b *StreamBinding) Stream() media.Stream {
	if b == nil {
		return nil
	}
	return b.stream
}

// Latest returns the newest frame and its sequence number (0 when none yet).
func (b *StreamBinding) Latest() (image.Image, uint64) {
	if b == nil {
		return nil, 0
	}
	f := b.latest.Load()
	if f == nil {
		return nil, 0
	}
	return f.img, f.sequence
}

// Stats returns reader counters.
func (b *StreamBinding) Stats() BindingStats {
	if b == nil {
		return BindingStats{}
	}
	st := BindingStats{Frames: b.sequence.Load(), Errors: b.errors.Load()}
	if ns := b.lastAt.Load(); ns != 0 {
		st.LastFrame = time.Unix(0, ns)
	}
	return st
}

// Unbind stops the frame reader and stops every track of the stream.
// The controller releases the same tracks on replacement or teardown; both
// paths are safe because stopping a stopped track is a no-op.
func (b *StreamBinding) Unbind() error {
	if b == nil {
		return nil
	}
	var err error
	b.once.Do(func() {
		close(b.stop)
		err = media.ReleaseTracks(b.stream)
	})
	return err
}

// Done is closed once the reader goroutine has exited.
func (b *StreamBinding) Done() <-chan struct{} { return b.done }

func (b *StreamBinding) stopped() bool {
	select {
	case <-b.stop:
		return true
	default:
		return false
	}
}

func (b *StreamBinding) loop(r media.FrameReader) {
	defer close(b.done)
	for !b.stopped() {
		img, release, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) || b.stopped() {
				return
			}
			b.errors.Add(1)
			if b.logger != nil {
				b.logger.Debug("preview.read", "stream", b.stream.ID(), "error", err)
			}
			time.Sleep(readRetryDelay)
			continue
		}
		// The driver recycles the buffer on release, so keep a copy.
		snap := images.Snapshot(img)
		if release != nil {
			release()
		}
		if snap == nil {
			continue
		}
		seq := b.sequence.Add(1)
		b.lastAt.Store(time.Now().UnixNano())
		b.latest.Store(&boundFrame{img: snap, sequence: seq})
	}
}

func videoReader(s media.Stream) media.FrameReader {
	if s == nil {
		return nil
	}
	for _, t := range s.Tracks() {
		if t == nil || t.Kind() != media.KindVideo {
			continue
		}
		if src, ok := t.(media.VideoSource); ok {
			if r := src.NewFrameReader(); r != nil {
				return r
			}
		}
	}
	return nil
}
