// Package sim models the XEC parallel I/O register space in memory. It
// implements core.RegisterIO with the hardware's register semantics
// (write-1-to-clear sources, write-only enable set/clear pairs, result =
// source & enable) and keeps an ordered journal of every access, so
// tests can assert not just final register values but the exact write
// ordering the driver produced.
package sim

import (
	"sync"

	"xecgpio/core"
	"xecgpio/regs"
)

// AccessKind tags one journal entry.
type AccessKind uint8

const (
	AccessRead AccessKind = iota
	AccessWrite
	AccessModify
	AccessBarrier
)

func (k AccessKind) String() string {
	switch k {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessModify:
		return "modify"
	case AccessBarrier:
		return "barrier"
	}
	return "unknown"
}

// Access records one bus transaction performed against the bank.
type Access struct {
	Kind AccessKind
	Addr uintptr
	Mask uint32 // AccessModify only
	// Value is the value written, or the value returned for reads.
	Value uint32
}

// Bank is a simulated register space for one chip.
type Bank struct {
	mu   sync.Mutex
	chip []core.PortConfig

	// Plain 32-bit cells: control words, parallel in/out registers.
	mem map[uintptr]uint32

	// Aggregator state, keyed by GIRQ id.
	girqSrc map[uint8]uint32
	girqEn  map[uint8]uint32
	blkEn   uint32

	journal []Access

	// MirrorInput makes parallel input reads return the corresponding
	// parallel output register, emulating a board where every output
	// pad loops back to its input buffer.
	MirrorInput bool
}

// New builds a bank for the given chip description. The description is
// only needed by the event model (DriveInput); raw register access works
// on any address.
func New(chip []core.PortConfig) *Bank {
	return &Bank{
		chip:    chip,
		mem:     make(map[uintptr]uint32),
		girqSrc: make(map[uint8]uint32),
		girqEn:  make(map[uint8]uint32),
	}
}

// girqReg resolves addr inside the aggregator range. ok is false for
// addresses outside it.
func girqReg(addr uintptr) (id uint8, offset uintptr, ok bool) {
	const blocks = regs.GirqLast - regs.GirqFirst + 1
	if addr < regs.GirqBase || addr >= regs.GirqBase+blocks*regs.GirqStride {
		return 0, 0, false
	}
	rel := addr - regs.GirqBase
	return regs.GirqFirst + uint8(rel/regs.GirqStride), rel % regs.GirqStride, true
}

func (b *Bank) readLocked(addr uintptr) uint32 {
	if addr == regs.GirqBase+regs.GirqBlkEnSet {
		return b.blkEn
	}
	if id, off, ok := girqReg(addr); ok {
		switch off {
		case regs.GirqSrc:
			return b.girqSrc[id]
		case regs.GirqResult:
			return b.girqSrc[id] & b.girqEn[id]
		default:
			// Enable set/clear are write-only.
			return 0
		}
	}
	if b.MirrorInput && addr >= regs.ParInBase && addr < regs.ParInBase+regs.NumPorts*4 {
		return b.mem[regs.ParOutBase+(addr-regs.ParInBase)]
	}
	return b.mem[addr]
}

func (b *Bank) writeLocked(addr uintptr, value uint32) {
	if addr == regs.GirqBase+regs.GirqBlkEnSet {
		b.blkEn |= value
		return
	}
	if id, off, ok := girqReg(addr); ok {
		switch off {
		case regs.GirqSrc:
			b.girqSrc[id] &^= value
		case regs.GirqEnSet:
			b.girqEn[id] |= value
		case regs.GirqEnClr:
			b.girqEn[id] &^= value
		case regs.GirqResult:
			// Read only.
		}
		return
	}
	b.mem[addr] = value
}

// Read32 implements core.RegisterIO.
func (b *Bank) Read32(addr uintptr) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	v := b.readLocked(addr)
	b.journal = append(b.journal, Access{Kind: AccessRead, Addr: addr, Value: v})
	return v
}

// Write32 implements core.RegisterIO.
func (b *Bank) Write32(addr uintptr, value uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.journal = append(b.journal, Access{Kind: AccessWrite, Addr: addr, Value: value})
	b.writeLocked(addr, value)
}

// Modify32 implements core.RegisterIO. The journal records it as one
// transaction carrying the field mask.
func (b *Bank) Modify32(addr uintptr, mask, value uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.journal = append(b.journal, Access{Kind: AccessModify, Addr: addr, Mask: mask, Value: value})
	old := b.readLocked(addr)
	b.writeLocked(addr, (old&^mask)|(value&mask))
}

// Barrier implements core.RegisterIO. Ordering is inherent in the
// journal; the entry exists so tests can assert where the driver put it.
func (b *Bank) Barrier() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.journal = append(b.journal, Access{Kind: AccessBarrier})
}

// Peek reads a cell without journaling, for test assertions.
func (b *Bank) Peek(addr uintptr) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.readLocked(addr)
}

// Poke writes a cell without journaling, for test setup.
func (b *Bank) Poke(addr uintptr, value uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeLocked(addr, value)
}

// Journal returns a copy of the access journal.
func (b *Bank) Journal() []Access {
	b.mu.Lock()
	defer b.mu.Unlock()
	j := make([]Access, len(b.journal))
	copy(j, b.journal)
	return j
}

// ResetJournal discards the recorded accesses.
func (b *Bank) ResetJournal() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.journal = nil
}

// BlockEnabled reports whether the aggregator block for id has been
// switched on.
func (b *Bank) BlockEnabled(id uint8) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.blkEn&(1<<id) != 0
}

// Enabled returns the forwarding enable mask of one aggregator block.
func (b *Bank) Enabled(id uint8) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.girqEn[id]
}

// Latch forces latched events for pins on one aggregator block, as if
// the detection logic had captured them.
func (b *Bank) Latch(id uint8, pins uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.girqSrc[id] |= pins
}

// DriveInput sets the pad levels of one port (by chip-table index) and
// latches events according to each valid pin's programmed detection
// mode. Latching does not consult the enable mask; enable only gates
// forwarding, exactly as in hardware.
func (b *Bank) DriveInput(port int, levels uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cfg := b.chip[port]
	old := b.mem[cfg.InAddr]
	b.mem[cfg.InAddr] = levels

	if !cfg.IntrCapable {
		return
	}

	var latched uint32
	for pin := uint8(0); pin < regs.PinsPerPort; pin++ {
		bit := uint32(1) << pin
		if cfg.ValidPins&bit == 0 {
			continue
		}
		idet := b.mem[regs.PinCtrlAddr(cfg.CtrlBase, pin)] & regs.CtrlIdetMask
		was, is := old&bit != 0, levels&bit != 0
		switch idet {
		case regs.CtrlIdetLvlLo:
			if !is {
				latched |= bit
			}
		case regs.CtrlIdetLvlHi:
			if is {
				latched |= bit
			}
		case regs.CtrlIdetREdge:
			if !was && is {
				latched |= bit
			}
		case regs.CtrlIdetFEdge:
			if was && !is {
				latched |= bit
			}
		case regs.CtrlIdetBEdge:
			if was != is {
				latched |= bit
			}
		}
	}
	b.girqSrc[cfg.GirqID] |= latched
}
