package core

import "xecgpio/regs"

// ServiceInterrupt services the port's aggregated interrupt. It is meant
// to be called from the interrupt vector the port's GIRQ block is wired
// to.
//
// The result register is a snapshot of the pins that have a latched,
// enabled event. Those source bits are cleared (write-1-to-clear) before
// any handler runs: an edge arriving while a handler executes re-latches
// and re-triggers instead of being lost, and nothing is double-counted.
func (p *Port) ServiceInterrupt() {
	if !p.cfg.IntrCapable {
		return
	}

	result := p.io.Read32(p.girqAddr(regs.GirqResult))
	p.io.Write32(p.girqAddr(regs.GirqSrc), result)

	p.fireCallbacks(result)
}
