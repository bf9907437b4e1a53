package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type fakeTrack struct {
	id    string
	kind  TrackKind
	mu    sync.Mutex
	stops int
}

func (t *fakeTrack) ID() string      { return t.id }
func (t *fakeTrack) Kind() TrackKind { return t.kind }

// Stop counts every call.
func (t *fakeTrack) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stops++
	return nil
}

func (t *fakeTrack) stopped() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stops
}

type fakeStream struct {
	id     string
	tracks []*fakeTrack
}

func newFakeStream(id string) *fakeStream {
	return &fakeStream{id: id, tracks: []*fakeTrack{
		{id: id + "-audio", kind: KindAudio},
		{id: id + "-video", kind: KindVideo},
	}}
}

func (s *fakeStream) ID() string { return s.id }
func (s *fakeStream) Tracks() []Track {
	out := make([]Track, 0, len(s.tracks))
	for _, t := range s.tracks {
		out = append(out, t)
	}
	return out
}

// allStopped reports whether every track was stopped exactly once.
func (s *fakeStream) allStopped() bool { return s.stoppedTimes(1) }

func (s *fakeStream) stoppedTimes(n int) bool {
	for _, t := range s.tracks {
		if t.stopped() != n {
			return false
		}
	}
	return true
}

func (s *fakeStream) released() bool {
	for _, t := range s.tracks {
		if t.stopped() == 0 {
			return false
		}
	}
	return true
}

// fakePlatform returns queued results in order.
type fakePlatform struct {
	mu          sync.Mutex
	unsupported bool
	results     []fakeResult
	calls       int
	last        ResolvedConstraints
	gate        chan struct{} // when set, GetUserMedia blocks until it is closed or receives
}

type fakeResult struct {
	stream *fakeStream
	err    error
	panic  any
}

func (p *fakePlatform) Supported() bool { return !p.unsupported }

func (p *fakePlatform) GetUserMedia(_ context.Context, c ResolvedConstraints) (Stream, error) {
	p.mu.Lock()
	p.calls++
	p.last = c
	if len(p.results) == 0 {
		p.mu.Unlock()
		return nil, fmt.Errorf("no result queued")
	}
	r := p.results[0]
	p.results = p.results[1:]
	gate := p.gate
	p.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if r.panic != nil {
		panic(r.panic)
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.stream, nil
}

func (p *fakePlatform) queue(results ...fakeResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = append(p.results, results...)
}

var errBoom = errors.New("boom")

var errAlreadyOpened = errors.New("invalid state: driver is already opened")

// exclusivePlatform opens one stream at a time: a new request fails while the
// previous stream still has live tracks.
type exclusivePlatform struct {
	mu     sync.Mutex
	opened []*fakeStream
	last   ResolvedConstraints
}

func (p *exclusivePlatform) Supported() bool { return true }

func (p *exclusivePlatform) GetUserMedia(_ context.Context, c ResolvedConstraints) (Stream, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.opened); n > 0 && !p.opened[n-1].released() {
		return nil, errAlreadyOpened
	}
	s := newFakeStream(fmt.Sprintf("s%d", len(p.opened)+1))
	p.opened = append(p.opened, s)
	p.last = c
	return s, nil
}
