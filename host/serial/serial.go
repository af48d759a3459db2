// Package serial opens the USB CDC link the firmware streams telemetry on.
package serial

import "io"

// Port is a byte stream to the board. Tests substitute an in-memory pipe.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate. USB CDC ignores it, a UART bridge does not.
	Baud int

	// ReadTimeout in milliseconds; 0 blocks until data arrives.
	ReadTimeout int
}

// DefaultBaud is what a UART bridge on the same link would need; the board's
// USB CDC port ignores it.
const DefaultBaud = 115200

// DefaultConfig returns the configuration used when only a device is given.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 100,
	}
}
