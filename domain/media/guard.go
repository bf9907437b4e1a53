package media

import (
	"errors"
	"fmt"
	"sync"
)

// StreamGuard owns a Stream and stops all of its tracks exactly once.
// Every path that discards or replaces the stream calls Release.
type StreamGuard struct {
	stream   Stream
	once     sync.Once
	released bool
	mu       sync.Mutex
}

// Guard wraps s. A nil stream yields a guard whose Release does nothing.
func Guard(s Stream) *StreamGuard { return &StreamGuard{stream: s} }

// Stream returns the guarded stream (nil once released).
func (g *StreamGuard) Stream() Stream {
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.released {
		return nil
	}
	return g.stream
}

// Released reports whether Release ran.
func (g *StreamGuard) Released() bool {
	if g == nil {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.released
}

// Release stops every track. Later calls return nil.
func (g *StreamGuard) Release() error {
	if g == nil {
		return nil
	}
	var err error
	g.once.Do(func() {
		g.mu.Lock()
		g.released = true
		g.mu.Unlock()
		err = ReleaseTracks(g.stream)
	})
	return err
}

// ReleaseTracks stops every track of s. It relies on Track.Stop being a
// no-op for stopped tracks, so calling it twice on the same stream is safe.
func ReleaseTracks(s Stream) error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, t := range s.Tracks() {
		if t == nil {
			continue
		}
		if err := t.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s track %s: %w", t.Kind(), t.ID(), err))
		}
	}
	return errors.Join(errs...)
}
