// Package device implements media.Platform on top of pion/mediadevices.
//
// Drivers are linked by importing device/drivers; building with the nodrivers
// tag leaves them out and the platform reports itself as unsupported.
package device
