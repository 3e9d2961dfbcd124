package core

import (
	"sync"

	"xecgpio/regs"
)

// PortConfig is the static description of one physical parallel I/O
// bank. Instances come from a chip table or a board description and are
// immutable once a Port is built from them.
type PortConfig struct {
	// Name identifies the bank, e.g. "gpio000_036".
	Name string

	// ValidPins has bit n set when pin n of the bank is implemented.
	// Every per-pin operation is validated against it before any
	// register write.
	ValidPins uint32

	// CtrlBase is the address of the bank's first pin control word.
	CtrlBase uintptr

	// InAddr and OutAddr are the bank's parallel input and output
	// registers.
	InAddr  uintptr
	OutAddr uintptr

	// GirqID is the bank's interrupt aggregator block. Only meaningful
	// when IntrCapable is set.
	GirqID uint8

	// IntrCapable is set when the bank's events are wired into an
	// aggregator block.
	IntrCapable bool
}

// valid reports whether pin is implemented on this bank.
func (c *PortConfig) valid(pin uint8) bool {
	return pin < regs.PinsPerPort && c.ValidPins&(1<<pin) != 0
}

// Port is one parallel I/O bank of the controller. All register traffic
// goes through the RegisterIO backend it was built with.
//
// Configuration and bulk output operations are serialized per port by an
// internal lock; they may be called from multiple goroutines.
// ServiceInterrupt is meant to be driven by the port's interrupt vector
// and only touches aggregator registers, which the configuration paths
// quiesce before reprogramming.
type Port struct {
	cfg PortConfig
	io  RegisterIO

	// mu serializes pin configuration and output register
	// read-modify-write cycles, which are not atomic on the bus.
	mu sync.Mutex

	// cbMu guards the callback list; registration may race dispatch.
	cbMu      sync.Mutex
	callbacks []*Callback
}

// NewPort builds a port instance over the given register backend.
func NewPort(cfg PortConfig, io RegisterIO) *Port {
	return &Port{cfg: cfg, io: io}
}

// Name returns the bank name.
func (p *Port) Name() string { return p.cfg.Name }

// Config returns a copy of the bank description.
func (p *Port) Config() PortConfig { return p.cfg }

// ctrlAddr returns the control word address for pin.
func (p *Port) ctrlAddr(pin uint8) uintptr {
	return regs.PinCtrlAddr(p.cfg.CtrlBase, pin)
}

// girqAddr returns the address of one aggregator register of this port's
// GIRQ block. Callers must check IntrCapable first; a port without an
// aggregator has no such registers.
func (p *Port) girqAddr(offset uintptr) uintptr {
	return regs.GirqAddr(p.cfg.GirqID) + offset
}
