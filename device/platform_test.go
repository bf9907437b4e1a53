package device

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"
	"testing"

	"github.com/pion/mediadevices"
	"github.com/pion/mediadevices/pkg/prop"

	"github.com/soocke/media-access-go/domain/media"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testPlatform(devices []mediadevices.MediaDeviceInfo, open Opener) *Platform {
	return &Platform{
		logger:    testLogger,
		supported: true,
		enumerate: func() []mediadevices.MediaDeviceInfo { return devices },
		open:      open,
	}
}

var bothKinds = []mediadevices.MediaDeviceInfo{
	{DeviceID: "cam0", Kind: mediadevices.VideoInput, Label: "cam"},
	{DeviceID: "mic0", Kind: mediadevices.AudioInput, Label: "mic"},
}

func TestNameFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string // "" means unnamed
	}{
		{"os permission", fmt.Errorf("open /dev/video0: %w", os.ErrPermission), media.NameNotAllowed},
		{"eacces", &os.PathError{Op: "open", Path: "/dev/video0", Err: syscall.EACCES}, media.NameNotAllowed},
		{"ebusy", &os.PathError{Op: "open", Path: "/dev/video0", Err: syscall.EBUSY}, media.NameNotReadable},
		{"busy text", errors.New("device or resource busy"), media.NameNotReadable},
		{"driver already opened", errors.New("invalid state: driver is already opened"), media.NameNotReadable},
		{"constraints", errors.New("failed to find the best driver that fits the constraints"), media.NameOverconstrained},
		{"enodev", &os.PathError{Op: "open", Path: "/dev/video9", Err: syscall.ENODEV}, media.NameNotFound},
		{"other", errors.New("codec blew up"), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := nameFailure(tc.err)
			var de *media.DeviceError
			if !errors.As(got, &de) {
				if tc.want != "" {
					t.Fatalf("expected %s, got unnamed %v", tc.want, got)
				}
				if !errors.Is(got, tc.err) {
					t.Fatal("unnamed failure should wrap the cause")
				}
				return
			}
			if de.Name() != tc.want {
				t.Fatalf("name = %s, want %s", de.Name(), tc.want)
			}
		})
	}
}

func TestGetUserMedia_Unsupported(t *testing.T) {
	p := testPlatform(bothKinds, nil)
	p.supported = false
	_, err := p.GetUserMedia(context.Background(), media.Resolve(media.CaptureRequest{}))
	if !errors.Is(err, media.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestGetUserMedia_NoDeviceIsNotFound(t *testing.T) {
	opened := false
	p := testPlatform([]mediadevices.MediaDeviceInfo{{DeviceID: "mic0", Kind: mediadevices.AudioInput}},
		func(mediadevices.MediaStreamConstraints) (mediadevices.MediaStream, error) {
			opened = true
			return nil, errors.New("unreachable")
		})
	_, err := p.GetUserMedia(context.Background(), media.Resolve(media.CaptureRequest{}))
	if got := media.Classify(err); got.Kind != media.KindDeviceNotFound {
		t.Fatalf("kind = %v (%v)", got.Kind, err)
	}
	if opened {
		t.Fatal("driver should not be opened without a device")
	}
}

func TestGetUserMedia_AudioOffSkipsAudioCheck(t *testing.T) {
	var got mediadevices.MediaStreamConstraints
	p := testPlatform([]mediadevices.MediaDeviceInfo{{DeviceID: "cam0", Kind: mediadevices.VideoInput}},
		func(c mediadevices.MediaStreamConstraints) (mediadevices.MediaStream, error) {
			got = c
			return mediadevices.NewMediaStream()
		})
	req := media.CaptureRequest{Audio: media.Disabled(), Video: media.Enabled()}
	s, err := p.GetUserMedia(context.Background(), media.Resolve(req))
	if err != nil {
		t.Fatalf("GetUserMedia: %v", err)
	}
	if s.ID() == "" {
		t.Fatal("stream should carry an id")
	}
	if got.Audio != nil {
		t.Fatal("audio should not be requested")
	}
	if got.Video == nil {
		t.Fatal("video should be requested")
	}
}

func TestGetUserMedia_DriverErrorNamed(t *testing.T) {
	p := testPlatform(bothKinds, func(mediadevices.MediaStreamConstraints) (mediadevices.MediaStream, error) {
		return nil, &os.PathError{Op: "open", Path: "/dev/video0", Err: syscall.EBUSY}
	})
	_, err := p.GetUserMedia(context.Background(), media.Resolve(media.CaptureRequest{}))
	if got := media.Classify(err); got.Message != media.MsgDeviceBusy {
		t.Fatalf("message = %q", got.Message)
	}
}

func TestGetUserMedia_HeldDeviceIsBusy(t *testing.T) {
	p := testPlatform(bothKinds, func(mediadevices.MediaStreamConstraints) (mediadevices.MediaStream, error) {
		return nil, errors.New("invalid state: driver is already opened")
	})
	_, err := p.GetUserMedia(context.Background(), media.Resolve(media.CaptureRequest{}))
	got := media.Classify(err)
	if got.Kind != media.KindDeviceBusy || got.Message != media.MsgDeviceBusy {
		t.Fatalf("classified as %s %q", got.Kind, got.Message)
	}
}

func TestGetUserMedia_NothingRequested(t *testing.T) {
	p := testPlatform(bothKinds, nil)
	req := media.ResolvedConstraints{Audio: media.Disabled(), Video: media.Disabled()}
	if _, err := p.GetUserMedia(context.Background(), req); err == nil {
		t.Fatal("expected an error when no kind is requested")
	}
}

func TestTranslate_Constrained(t *testing.T) {
	p := testPlatform(bothKinds, nil)
	resolved := media.Resolve(media.CaptureRequest{
		Audio: media.Constrained(media.TrackConstraints{SampleRate: 48000, ChannelCount: 1, DeviceID: "mic0"}),
	})
	msc := p.translate(resolved)
	if msc.Video == nil || msc.Audio == nil {
		t.Fatal("both kinds should be requested")
	}
	var vc, ac mediadevices.MediaTrackConstraints
	msc.Video(&vc)
	msc.Audio(&ac)
	if vc.Width != prop.Int(1280) || vc.Height != prop.Int(720) || vc.FrameRate != prop.Float(30) {
		t.Fatalf("video defaults not translated: %+v", vc)
	}
	if ac.SampleRate != prop.Int(48000) || ac.ChannelCount != prop.Int(1) || ac.DeviceID != prop.String("mic0") {
		t.Fatalf("audio constraints not translated: %+v", ac)
	}
}

func TestTranslate_Unconstrained(t *testing.T) {
	p := testPlatform(bothKinds, nil)
	msc := p.translate(media.ResolvedConstraints{Audio: media.Enabled(), Video: media.Enabled()})
	var vc mediadevices.MediaTrackConstraints
	msc.Video(&vc)
	if vc.Width != nil || vc.Height != nil || vc.FrameRate != nil {
		t.Fatalf("unconstrained video should leave properties unset: %+v", vc)
	}
}

func TestDeviceIDs(t *testing.T) {
	p := testPlatform(append(bothKinds, mediadevices.MediaDeviceInfo{DeviceID: "cam1", Kind: mediadevices.VideoInput}), nil)
	video := p.DeviceIDs(media.KindVideo)
	if len(video) != 2 || video[0] != "cam0" || video[1] != "cam1" {
		t.Fatalf("video ids = %v", video)
	}
	audio := p.DeviceIDs(media.KindAudio)
	if len(audio) != 1 || audio[0] != "mic0" {
		t.Fatalf("audio ids = %v", audio)
	}
	var nilPlatform *Platform
	if ids := nilPlatform.DeviceIDs(media.KindVideo); ids != nil {
		t.Fatalf("nil platform ids = %v", ids)
	}
}
