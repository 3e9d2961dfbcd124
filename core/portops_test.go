package core_test

import (
	"testing"
)

func TestBulkSetAndGetRoundTrip(t *testing.T) {
	p, bank := newTestPort(t)
	bank.MirrorInput = true

	const mask = 0x0000f00f
	p.SetBits(mask)
	if got := p.Get(); got != mask {
		t.Errorf("Get() = %08x, want %08x", got, mask)
	}
}

func TestBulkToggleTwiceRestores(t *testing.T) {
	p, bank := newTestPort(t)
	bank.MirrorInput = true

	p.SetBits(0x00000f00)
	before := p.Get()

	p.ToggleBits(0x00ffff00)
	if got := p.Get(); got == before {
		t.Fatalf("toggle did not change the register: %08x", got)
	}
	p.ToggleBits(0x00ffff00)
	if got := p.Get(); got != before {
		t.Errorf("double toggle did not restore: %08x, want %08x", got, before)
	}
}

func TestBulkSetMasked(t *testing.T) {
	p, bank := newTestPort(t)
	out := p.Config().OutAddr

	bank.Poke(out, 0xffff0000)
	p.SetMasked(0x00ff00ff, 0x12345678)

	// out = (out &^ mask) | (mask & value)
	want := (uint32(0xffff0000) &^ 0x00ff00ff) | (0x00ff00ff & 0x12345678)
	if got := bank.Peek(out); got != want {
		t.Errorf("SetMasked result %08x, want %08x", got, want)
	}
}

func TestBulkClearBits(t *testing.T) {
	p, bank := newTestPort(t)
	out := p.Config().OutAddr

	bank.Poke(out, 0xffffffff)
	p.ClearBits(0x0f0f0f0f)
	if got := bank.Peek(out); got != 0xf0f0f0f0 {
		t.Errorf("ClearBits result %08x, want f0f0f0f0", got)
	}
}

func TestBulkIgnoresValidPinBitmap(t *testing.T) {
	// Bits outside the valid-pin bitmap are inert hardware positions,
	// not errors; bulk operations pass them straight through.
	p, bank := newTestPort(t)
	out := p.Config().OutAddr

	p.SetBits(0xffffffff)
	if got := bank.Peek(out); got != 0xffffffff {
		t.Errorf("SetBits filtered bits: %08x", got)
	}
}

func TestGetReadsInputNotOutput(t *testing.T) {
	p, bank := newTestPort(t)

	// Without mirroring, the input register is independent of the
	// output register: Get reports pad levels, not driven values.
	p.SetBits(0x000000ff)
	if got := p.Get(); got != 0 {
		t.Errorf("Get() = %08x with undriven pads", got)
	}

	bank.DriveInput(0, 0x00030000)
	if got := p.Get(); got != 0x00030000 {
		t.Errorf("Get() = %08x, want 00030000", got)
	}
}
