package core

import "errors"

// Configuration errors. All of them are detected before the first
// register write of the failing operation, so a rejected request never
// leaves partial state behind.
var (
	// ErrInvalidPin reports a pin index outside the port's valid-pin
	// bitmap.
	ErrInvalidPin = errors.New("pin not implemented on this port")

	// ErrUnsupportedMode reports a request this hardware family cannot
	// express: open-source drive, or interrupts on a port without an
	// aggregator.
	ErrUnsupportedMode = errors.New("mode not supported by this hardware")

	// ErrInvalidTrigger reports an interrupt trigger value outside the
	// defined enumeration for the requested mode.
	ErrInvalidTrigger = errors.New("invalid interrupt trigger")
)
