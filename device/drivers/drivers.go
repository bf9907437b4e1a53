//go:build !nodrivers

// Package drivers links the capture drivers into the binary.
package drivers

import (
	// Registers V4L2/AVFoundation/DirectShow cameras.
	_ "github.com/pion/mediadevices/pkg/driver/camera"
	// Registers malgo capture devices.
	_ "github.com/pion/mediadevices/pkg/driver/microphone"
)

// Linked reports whether capture drivers are compiled in.
const Linked = true
