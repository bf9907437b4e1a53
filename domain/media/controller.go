package media

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

var errNoStream = errors.New("platform returned no stream")

// Controller owns the acquisition state for one capture request.
//
// Initiate may be called repeatedly. Overlapping calls are neither merged nor
// cancelled: each one runs to completion and the last to settle wins. A stream
// displaced that way is released, never leaked.
type Controller struct {
	platform Platform
	logger   *slog.Logger

	mu         sync.Mutex
	req        CaptureRequest
	resolved   ResolvedConstraints
	held       *StreamGuard
	err        *AcquisitionError
	loading    bool
	denied     bool
	generation uint64
	closed     bool
}

// NewController returns a controller for req. platform may be nil, in which
// case every attempt settles as unsupported.
func NewController(platform Platform, req CaptureRequest, logger *slog.Logger) *Controller {
	return &Controller{platform: platform, logger: logger, req: req, resolved: Resolve(req)}
}

// Request returns the current capture request.
func (c *Controller) Request() CaptureRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.req
}

// Resolved returns the constraints the next attempt will use.
func (c *Controller) Resolved() ResolvedConstraints {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolved
}

// SetRequest replaces the capture request. Constraints are recomputed only
// when the request actually changed. The held stream is left untouched.
func (c *Controller) SetRequest(req CaptureRequest) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if req == c.req {
		return false
	}
	c.req = req
	c.resolved = Resolve(req)
	return true
}

// State returns a snapshot of the acquisition state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// TrackCount returns the number of tracks on the held stream.
func (c *Controller) TrackCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s := c.held.Stream(); s != nil {
		return len(s.Tracks())
	}
	return 0
}

// Initiate performs one capture attempt and returns the state it settled in.
// Failures are recorded in the state, never returned or panicked.
func (c *Controller) Initiate(ctx context.Context) State {
	attempt := uuid.NewString()

	c.mu.Lock()
	c.loading = true
	c.generation++
	resolved := c.resolved
	platform := c.platform
	c.mu.Unlock()

	c.logDebug("media.initiate", "attempt", attempt, "audio", resolved.Audio.Mode.String(), "video", resolved.Video.Mode.String())
	start := time.Now()

	stream, failure := capture(ctx, platform, resolved)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.generation++

	if c.closed {
		// Torn down while the request was in flight.
		if stream != nil {
			_ = ReleaseTracks(stream)
		}
		return c.snapshotLocked()
	}

	if failure == nil {
		c.replaceLocked(Guard(stream))
		c.err = nil
		c.denied = false
		c.logInfo("media.acquired", "attempt", attempt, "stream", stream.ID(), "tracks", len(stream.Tracks()), "elapsed", time.Since(start))
		return c.snapshotLocked()
	}

	classified := Classify(failure)
	c.replaceLocked(nil)
	c.err = classified
	if classified.Kind == KindPermissionDenied {
		c.denied = true
	}
	c.logWarn("media.failed", "attempt", attempt, "kind", classified.Kind.String(), "error", classified.Cause, "elapsed", time.Since(start))
	return c.snapshotLocked()
}

// Reacquire releases the held stream and then runs a new attempt. Drivers
// open devices exclusively, so a live stream has to be stopped before the
// same device can be opened with different constraints.
func (c *Controller) Reacquire(ctx context.Context) State {
	c.mu.Lock()
	if c.closed {
		st := c.snapshotLocked()
		c.mu.Unlock()
		return st
	}
	if c.held != nil {
		c.replaceLocked(nil)
		c.generation++
		c.logDebug("media.reacquire", "released", true)
	}
	c.mu.Unlock()
	return c.Initiate(ctx)
}

// Close releases the held stream. Further Initiate results are discarded.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.held == nil {
		return nil
	}
	err := c.held.Release()
	c.held = nil
	c.generation++
	if err != nil {
		c.logWarn("media.release", "error", err)
	}
	return err
}

// capture calls the platform and turns panics into failures.
func capture(ctx context.Context, p Platform, resolved ResolvedConstraints) (s Stream, failure any) {
	defer func() {
		if r := recover(); r != nil {
			s, failure = nil, r
		}
	}()
	if p == nil || !p.Supported() {
		return nil, ErrUnsupported
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stream, err := p.GetUserMedia(ctx, resolved)
	if err != nil {
		if stream != nil {
			_ = ReleaseTracks(stream)
		}
		return nil, err
	}
	if stream == nil {
		return nil, errNoStream
	}
	return stream, nil
}

// replaceLocked installs g and releases whatever it displaces.
func (c *Controller) replaceLocked(g *StreamGuard) {
	prev := c.held
	c.held = g
	if prev != nil && prev != g {
		if err := prev.Release(); err != nil {
			c.logWarn("media.release", "error", err)
		}
	}
}

func (c *Controller) snapshotLocked() State {
	return State{
		Stream:           c.held.Stream(),
		Err:              c.err,
		Loading:          c.loading,
		PermissionDenied: c.denied,
		Generation:       c.generation,
	}
}

func (c *Controller) logDebug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Controller) logInfo(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

func (c *Controller) logWarn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
