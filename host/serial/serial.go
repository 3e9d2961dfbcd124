// Package serial abstracts the serial link between the host tools and
// the EC debug monitor.
package serial

import "io"

// Port is a serial port. The abstraction keeps the monitor protocol
// independent of the transport: native serial for real hardware, an
// in-memory pipe for tests.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port parameters.
type Config struct {
	// Device path, e.g. "/dev/ttyACM0".
	Device string

	// Baud rate. The monitor stub runs at 115200 by default; USB CDC
	// links ignore the setting.
	Baud int

	// ReadTimeout in milliseconds, 0 blocks.
	ReadTimeout int
}

// DefaultConfig returns the monitor link defaults for device.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500,
	}
}
