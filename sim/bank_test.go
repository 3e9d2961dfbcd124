package sim

import (
	"testing"

	"xecgpio/core"
	"xecgpio/regs"
	"xecgpio/targets/mec1701"
)

func girq(id uint8, off uintptr) uintptr {
	return regs.GirqAddr(id) + off
}

func TestSourceIsWriteOneToClear(t *testing.T) {
	b := New(nil)
	b.Latch(11, 0x0000000f)

	b.Write32(girq(11, regs.GirqSrc), 0x00000005)
	if got := b.Peek(girq(11, regs.GirqSrc)); got != 0x0000000a {
		t.Errorf("source %08x after partial clear, want 0000000a", got)
	}

	// Writing zero clears nothing.
	b.Write32(girq(11, regs.GirqSrc), 0)
	if got := b.Peek(girq(11, regs.GirqSrc)); got != 0x0000000a {
		t.Errorf("source %08x after zero write, want 0000000a", got)
	}
}

func TestEnableSetClearPair(t *testing.T) {
	b := New(nil)

	b.Write32(girq(9, regs.GirqEnSet), 0x00000110)
	b.Write32(girq(9, regs.GirqEnSet), 0x00000001)
	if got := b.Enabled(9); got != 0x00000111 {
		t.Errorf("enable %08x, want 00000111", got)
	}

	b.Write32(girq(9, regs.GirqEnClr), 0x00000100)
	if got := b.Enabled(9); got != 0x00000011 {
		t.Errorf("enable %08x after clear, want 00000011", got)
	}

	// Enable registers are write-only.
	if got := b.Read32(girq(9, regs.GirqEnSet)); got != 0 {
		t.Errorf("enable-set read back %08x", got)
	}
}

func TestResultIsSourceAndEnable(t *testing.T) {
	b := New(nil)
	b.Latch(8, 0x000000ff)
	b.Write32(girq(8, regs.GirqEnSet), 0x0000000f)

	if got := b.Read32(girq(8, regs.GirqResult)); got != 0x0000000f {
		t.Errorf("result %08x, want 0000000f", got)
	}

	// Result register ignores writes.
	b.Write32(girq(8, regs.GirqResult), 0xffffffff)
	if got := b.Read32(girq(8, regs.GirqResult)); got != 0x0000000f {
		t.Errorf("result %08x after bogus write, want 0000000f", got)
	}
}

func TestBlockEnable(t *testing.T) {
	b := New(nil)
	b.Write32(regs.GirqBase+regs.GirqBlkEnSet, 1<<11|1<<26)

	if !b.BlockEnabled(11) || !b.BlockEnabled(26) {
		t.Error("block enables not latched")
	}
	if b.BlockEnabled(10) {
		t.Error("unset block reads enabled")
	}
}

func TestMirrorInput(t *testing.T) {
	b := New(nil)
	b.MirrorInput = true

	b.Write32(regs.PortOutAddr(3), 0x12345678)
	if got := b.Read32(regs.PortInAddr(3)); got != 0x12345678 {
		t.Errorf("mirrored input %08x, want 12345678", got)
	}

	// Other ports stay independent.
	if got := b.Read32(regs.PortInAddr(2)); got != 0 {
		t.Errorf("port 2 input %08x, want 0", got)
	}
}

func TestModifyTouchesOnlyMaskedBits(t *testing.T) {
	b := New(nil)
	addr := regs.PinCtrlAddr(regs.PortCtrlBase(0), 12)

	b.Poke(addr, 0xffff0000)
	b.Modify32(addr, 0x00ff00ff, 0x12345678)

	want := (uint32(0xffff0000) &^ 0x00ff00ff) | (0x12345678 & 0x00ff00ff)
	if got := b.Peek(addr); got != want {
		t.Errorf("modify result %08x, want %08x", got, want)
	}
}

func TestJournalRecordsOrder(t *testing.T) {
	b := New(nil)
	addr := regs.PortOutAddr(0)

	b.Write32(addr, 1)
	b.Barrier()
	_ = b.Read32(addr)

	j := b.Journal()
	if len(j) != 3 {
		t.Fatalf("journal has %d entries, want 3", len(j))
	}
	kinds := []AccessKind{AccessWrite, AccessBarrier, AccessRead}
	for i, k := range kinds {
		if j[i].Kind != k {
			t.Errorf("entry %d: kind %v, want %v", i, j[i].Kind, k)
		}
	}

	b.ResetJournal()
	if len(b.Journal()) != 0 {
		t.Error("journal not cleared")
	}
}

func TestDriveInputLatchesPerDetectionMode(t *testing.T) {
	chip := mec1701.Chip()

	cases := []struct {
		name    string
		idet    uint32
		before  uint32
		after   uint32
		latched bool
	}{
		{"rising on rise", regs.CtrlIdetREdge, 0, 1, true},
		{"rising on fall", regs.CtrlIdetREdge, 1, 0, false},
		{"falling on fall", regs.CtrlIdetFEdge, 1, 0, true},
		{"falling on rise", regs.CtrlIdetFEdge, 0, 1, false},
		{"both on rise", regs.CtrlIdetBEdge, 0, 1, true},
		{"both on fall", regs.CtrlIdetBEdge, 1, 0, true},
		{"both steady", regs.CtrlIdetBEdge, 1, 1, false},
		{"level high", regs.CtrlIdetLvlHi, 0, 1, true},
		{"level low held high", regs.CtrlIdetLvlLo, 1, 1, false},
		{"disabled", regs.CtrlIdetDisable, 0, 1, false},
	}

	const pin = 4
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(chip)
			b.Poke(regs.PinCtrlAddr(chip[0].CtrlBase, pin), tc.idet)

			b.DriveInput(0, tc.before<<pin)
			// Settle: clear anything the initial drive latched.
			b.Write32(girq(chip[0].GirqID, regs.GirqSrc), 0xffffffff)

			b.DriveInput(0, tc.after<<pin)
			got := b.Peek(girq(chip[0].GirqID, regs.GirqSrc))&(1<<pin) != 0
			if got != tc.latched {
				t.Errorf("latched = %v, want %v", got, tc.latched)
			}
		})
	}
}

func TestDriveInputIgnoresInvalidPins(t *testing.T) {
	chip := mec1701.Chip()
	b := New(chip)

	// Pin 1 of port 0 is not implemented; arm an always-latching mode
	// everywhere and check the hole stays quiet.
	for pin := uint8(0); pin < regs.PinsPerPort; pin++ {
		b.Poke(regs.PinCtrlAddr(chip[0].CtrlBase, pin), regs.CtrlIdetLvlHi)
	}
	b.DriveInput(0, 0xffffffff)

	src := b.Peek(girq(chip[0].GirqID, regs.GirqSrc))
	if src&^chip[0].ValidPins != 0 {
		t.Errorf("events latched for unimplemented pins: %08x", src)
	}
}

var _ core.RegisterIO = (*Bank)(nil)
