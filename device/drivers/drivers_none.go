//go:build nodrivers

// Package drivers links the capture drivers into the binary.
package drivers

// Linked reports whether capture drivers are compiled in.
const Linked = false
