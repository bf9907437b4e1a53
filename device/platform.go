package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/pion/mediadevices"
	"github.com/pion/mediadevices/pkg/prop"

	"github.com/soocke/media-access-go/domain/media"
)

// Enumerator lists the devices known to the driver registry.
type Enumerator func() []mediadevices.MediaDeviceInfo

// Opener performs the driver-level capture request.
type Opener func(mediadevices.MediaStreamConstraints) (mediadevices.MediaStream, error)

// Platform adapts pion/mediadevices to media.Platform.
type Platform struct {
	logger    *slog.Logger
	supported bool
	enumerate Enumerator
	open      Opener
}

var _ media.Platform = (*Platform)(nil)

// NewPlatform returns a platform backed by the registered drivers. Pass
// drivers.Linked as supported.
func NewPlatform(logger *slog.Logger, supported bool) *Platform {
	return &Platform{
		logger:    logger,
		supported: supported,
		enumerate: mediadevices.EnumerateDevices,
		open:      mediadevices.GetUserMedia,
	}
}

// Supported reports whether any capture driver is linked in.
func (p *Platform) Supported() bool { return p != nil && p.supported }

// Devices lists the enumerated capture devices.
func (p *Platform) Devices() []mediadevices.MediaDeviceInfo {
	if p == nil || p.enumerate == nil {
		return nil
	}
	return p.enumerate()
}

// DeviceIDs lists the ids of enumerated devices of one kind, in driver order.
func (p *Platform) DeviceIDs(kind media.TrackKind) []string {
	want := mediadevices.VideoInput
	if kind == media.KindAudio {
		want = mediadevices.AudioInput
	}
	var ids []string
	for _, d := range p.Devices() {
		if d.Kind == want {
			ids = append(ids, d.DeviceID)
		}
	}
	return ids
}

// GetUserMedia opens the requested kinds and wraps them in a media.Stream.
// The driver call is not cancellable; ctx is only checked before it starts.
func (p *Platform) GetUserMedia(ctx context.Context, c media.ResolvedConstraints) (media.Stream, error) {
	if !p.Supported() {
		return nil, media.ErrUnsupported
	}
	if !c.Audio.Requested() && !c.Video.Requested() {
		return nil, fmt.Errorf("getusermedia: at least one of audio or video must be requested")
	}
	if err := p.checkDevices(c); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	msc := p.translate(c)
	ms, err := p.open(msc)
	if err != nil {
		return nil, nameFailure(err)
	}
	return wrapStream(uuid.NewString(), ms), nil
}

// checkDevices fails with NotFoundError when a requested kind has no device.
func (p *Platform) checkDevices(c media.ResolvedConstraints) error {
	var audio, video int
	for _, d := range p.Devices() {
		switch d.Kind {
		case mediadevices.AudioInput:
			audio++
		case mediadevices.VideoInput:
			video++
		}
	}
	if p.logger != nil {
		p.logger.Debug("device.enumerate", "audio_inputs", audio, "video_inputs", video)
	}
	if c.Video.Requested() && video == 0 {
		return media.NewDeviceError(media.NameNotFound, errors.New("no video input device"))
	}
	if c.Audio.Requested() && audio == 0 {
		return media.NewDeviceError(media.NameNotFound, errors.New("no audio input device"))
	}
	return nil
}

// translate converts resolved constraints to driver constraints. Kinds that
// are not requested are left nil so no driver is opened for them.
func (p *Platform) translate(c media.ResolvedConstraints) mediadevices.MediaStreamConstraints {
	var out mediadevices.MediaStreamConstraints
	if c.Video.Requested() {
		vc := c.Video.Constraints
		constrained := c.Video.Mode == media.CapabilityConstrained
		out.Video = func(t *mediadevices.MediaTrackConstraints) {
			if !constrained {
				return
			}
			if vc.DeviceID != "" {
				t.DeviceID = prop.String(vc.DeviceID)
			}
			if vc.Width > 0 {
				t.Width = prop.Int(vc.Width)
			}
			if vc.Height > 0 {
				t.Height = prop.Int(vc.Height)
			}
			if vc.FrameRate > 0 {
				t.FrameRate = prop.Float(vc.FrameRate)
			}
		}
	}
	if c.Audio.Requested() {
		ac := c.Audio.Constraints
		constrained := c.Audio.Mode == media.CapabilityConstrained
		if constrained && p.logger != nil && (ac.NoiseSuppression || ac.EchoCancellation) {
			// No driver property exists for these; the request is advisory.
			p.logger.Debug("device.audio_processing", "noise_suppression", ac.NoiseSuppression, "echo_cancellation", ac.EchoCancellation)
		}
		out.Audio = func(t *mediadevices.MediaTrackConstraints) {
			if !constrained {
				return
			}
			if ac.DeviceID != "" {
				t.DeviceID = prop.String(ac.DeviceID)
			}
			if ac.SampleRate > 0 {
				t.SampleRate = prop.Int(ac.SampleRate)
			}
			if ac.ChannelCount > 0 {
				t.ChannelCount = prop.Int(ac.ChannelCount)
			}
		}
	}
	return out
}

// nameFailure attaches a platform identifier to driver errors it recognises.
func nameFailure(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, os.ErrPermission), errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM),
		strings.Contains(msg, "permission denied"), strings.Contains(msg, "not permitted"):
		return media.NewDeviceError(media.NameNotAllowed, err)
	case errors.Is(err, syscall.EBUSY), strings.Contains(msg, "busy"), strings.Contains(msg, "in use"),
		strings.Contains(msg, "already opened"): // pion driver state when another stream holds the device
		return media.NewDeviceError(media.NameNotReadable, err)
	case strings.Contains(msg, "fits the constraints"), strings.Contains(msg, "constraint"):
		return media.NewDeviceError(media.NameOverconstrained, err)
	case errors.Is(err, syscall.ENODEV), errors.Is(err, os.ErrNotExist), strings.Contains(msg, "no such device"):
		return media.NewDeviceError(media.NameNotFound, err)
	default:
		return fmt.Errorf("getusermedia: %w", err)
	}
}
