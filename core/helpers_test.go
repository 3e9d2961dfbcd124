package core_test

import (
	"testing"

	"xecgpio/core"
	"xecgpio/regs"
	"xecgpio/sim"
	"xecgpio/targets/mec1701"
)

// newTestPort builds port 0 of the MEC1701 chip table over a fresh
// simulated bank. Port 0 conveniently has holes in its valid-pin bitmap
// (pins 1, 5, 6 and 31 are not implemented).
func newTestPort(t *testing.T) (*core.Port, *sim.Bank) {
	t.Helper()
	chip := mec1701.Chip()
	bank := sim.New(chip)
	return core.NewPort(chip[0], bank), bank
}

// ctrlAddr returns the control word address of pin on port 0.
func ctrlAddr(pin uint8) uintptr {
	return regs.PinCtrlAddr(regs.PortCtrlBase(0), pin)
}

// accessIndex returns the journal index of the first access matching
// kind and addr, or -1.
func accessIndex(j []sim.Access, kind sim.AccessKind, addr uintptr) int {
	for i, a := range j {
		if a.Kind == kind && a.Addr == addr {
			return i
		}
	}
	return -1
}

// countAccesses returns how many journal entries touch addr.
func countAccesses(j []sim.Access, addr uintptr) int {
	n := 0
	for _, a := range j {
		if a.Kind != sim.AccessBarrier && a.Addr == addr {
			n++
		}
	}
	return n
}
