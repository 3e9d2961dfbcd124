// Package regs describes the register layout of the XEC-family parallel
// I/O subsystem: the per-pin control words (PCR1), the parallel
// input/output registers, and the GIRQ interrupt aggregator blocks.
//
// Addresses are the fixed AHB locations on MEC17xx-class parts. Every
// register is 32 bits wide and accessed as a whole word.
package regs

const (
	// PinsPerPort is the width of one parallel I/O bank. Bit n of a
	// port-wide register always corresponds to pin n of that bank.
	PinsPerPort = 32

	// NumPorts is the number of parallel I/O banks on this family.
	NumPorts = 6
)

// Fixed base addresses of the GPIO block.
const (
	// PCRBase is the start of the pin control word array. One 32-bit
	// control word per pin, ports laid out back to back, so the control
	// word of pin p on port n lives at PCRBase + (n*32+p)*4.
	PCRBase uintptr = 0x40081000

	// ParInBase and ParOutBase hold the parallel input and output
	// registers, one 32-bit word per port.
	ParInBase  uintptr = 0x40081300
	ParOutBase uintptr = 0x40081380

	// DlyAddr is a read-only register in the same AHB segment as the
	// GPIO block. Reading it forces a bus round-trip, which flushes any
	// posted write ahead of it.
	DlyAddr uintptr = 0x40080150
)

// GIRQ interrupt aggregator. Each GIRQ id owns one block of four
// registers; blocks are packed with a fixed stride starting at GirqFirst.
const (
	GirqBase   uintptr = 0x4000e000
	GirqFirst          = 8 // GIRQ08 is the first implemented block
	GirqLast           = 26
	GirqStride uintptr = 0x14

	// Register offsets within one GIRQ block.
	GirqSrc    uintptr = 0x00 // latched sources, write 1 to clear
	GirqEnSet  uintptr = 0x04 // write only, 1 enables forwarding
	GirqResult uintptr = 0x08 // read only, source & enable
	GirqEnClr  uintptr = 0x0c // write only, 1 disables forwarding

	// GirqBlkEnSet enables whole aggregator blocks, one bit per GIRQ id.
	// Offset is relative to GirqBase.
	GirqBlkEnSet uintptr = 0x200
)

// PCR1 control word fields. Fields are non-overlapping; a pin is always
// reprogrammed by masked read-modify-write so that fields outside the
// mask (pin muxing among them) survive untouched.
const (
	// Pull resistor select.
	CtrlPUDMask uint32 = 0x3 << 0
	CtrlPUDNone uint32 = 0x0 << 0
	CtrlPUDUp   uint32 = 0x1 << 0
	CtrlPUDDown uint32 = 0x2 << 0

	// Pad power gate. The off encoding detaches the pad completely.
	CtrlPwrgMask uint32 = 1 << 2
	CtrlPwrgVTR  uint32 = 0 << 2
	CtrlPwrgOff  uint32 = 1 << 2

	// Interrupt detection. The power-on value of the field is zero,
	// which reads back as level/low detection, not as "disabled".
	CtrlIdetMask    uint32 = 0x7 << 4
	CtrlIdetLvlLo   uint32 = 0x0 << 4
	CtrlIdetLvlHi   uint32 = 0x1 << 4
	CtrlIdetDisable uint32 = 0x4 << 4
	CtrlIdetREdge   uint32 = 0x5 << 4
	CtrlIdetFEdge   uint32 = 0x6 << 4
	CtrlIdetBEdge   uint32 = 0x7 << 4

	// Output buffer type.
	CtrlBuftMask      uint32 = 1 << 8
	CtrlBuftPushPull  uint32 = 0 << 8
	CtrlBuftOpenDrain uint32 = 1 << 8

	// Pad direction.
	CtrlDirMask   uint32 = 1 << 9
	CtrlDirInput  uint32 = 0 << 9
	CtrlDirOutput uint32 = 1 << 9

	// Alternate output disable. While set, the parallel output register
	// drives the pad; while clear, the alternate function does.
	CtrlAODMask uint32 = 1 << 10
	CtrlAODDis  uint32 = 1 << 10

	// Input pad disable. Set to power down the input buffer.
	CtrlInpadDisMask uint32 = 1 << 15
)

// PinCtrlAddr returns the address of the control word for pin on the bank
// whose control array starts at base.
func PinCtrlAddr(base uintptr, pin uint8) uintptr {
	return base + uintptr(pin)*4
}

// PortCtrlBase returns the control array base of port n.
func PortCtrlBase(port int) uintptr {
	return PCRBase + uintptr(port)*PinsPerPort*4
}

// PortInAddr returns the parallel input register address of port n.
func PortInAddr(port int) uintptr {
	return ParInBase + uintptr(port)*4
}

// PortOutAddr returns the parallel output register address of port n.
func PortOutAddr(port int) uintptr {
	return ParOutBase + uintptr(port)*4
}

// GirqAddr returns the base address of the aggregator block for id.
func GirqAddr(id uint8) uintptr {
	return GirqBase + uintptr(id-GirqFirst)*GirqStride
}
