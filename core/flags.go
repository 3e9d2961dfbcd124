package core

// PinFlags is the symbolic pin configuration request passed to
// Port.Configure. Flags mirror the generic GPIO flag vocabulary: a
// direction, an optional initial output level, pull selection and drive
// buffer type.
type PinFlags uint16

const (
	// Input enables the input pad.
	Input PinFlags = 1 << 0

	// Output drives the pad from the parallel output register.
	Output PinFlags = 1 << 1

	// OutputInitLow and OutputInitHigh preload the output register bit
	// before the output driver is turned on.
	OutputInitLow  PinFlags = 1 << 2
	OutputInitHigh PinFlags = 1 << 3

	// PullUp and PullDown enable the internal resistors. Neither flag
	// leaves the pin floating.
	PullUp   PinFlags = 1 << 4
	PullDown PinFlags = 1 << 5

	// SingleEnded selects single-ended drive; LineOpenDrain picks which
	// half. Open source (single-ended without open drain) is not
	// implemented by this hardware family and is rejected.
	SingleEnded   PinFlags = 1 << 6
	LineOpenDrain PinFlags = 1 << 7
)

const (
	// PushPull is the default drive mode.
	PushPull PinFlags = 0

	// OpenDrain drives low actively and releases the line for high.
	OpenDrain PinFlags = SingleEnded | LineOpenDrain

	// Disconnected detaches the pin entirely: input pad off, output
	// driver off, pad power gated. Only the exact value disconnects;
	// combining other flags with it is not a disconnect request.
	Disconnected PinFlags = 0
)

// IntMode selects how a pin's interrupt detection operates.
type IntMode uint8

const (
	IntModeDisabled IntMode = iota
	IntModeLevel
	IntModeEdge
)

// IntTrigger refines IntMode: under IntModeLevel, Low and High select
// the active level; under IntModeEdge, Low means falling, High means
// rising and Both means either edge.
type IntTrigger uint8

const (
	IntTriggerLow IntTrigger = iota
	IntTriggerHigh
	IntTriggerBoth
)
