package core

import "xecgpio/regs"

// ConfigureInterrupt programs one pin's interrupt detection and its
// forwarding through the port's aggregator block.
//
// Ordering is part of the contract: forwarding is disabled before the
// detection field changes so a stale condition cannot latch while the
// pin is being reprogrammed, and it is re-enabled only after the new
// detection mode is visible and any stale source bit has been cleared.
func (p *Port) ConfigureInterrupt(pin uint8, mode IntMode, trig IntTrigger) error {
	if !p.cfg.valid(pin) {
		return ErrInvalidPin
	}

	if mode != IntModeDisabled && !p.cfg.IntrCapable {
		return ErrUnsupportedMode
	}

	// Resolve the detection encoding up front; validation must finish
	// before the first register write.
	var idet uint32
	switch mode {
	case IntModeDisabled:
		// The power-on value of the detection field is the level/low
		// encoding, so "leave it alone" would silently arm a level
		// interrupt. Commit the explicit disable code instead.
		idet = regs.CtrlIdetDisable
	case IntModeLevel:
		switch trig {
		case IntTriggerLow:
			idet = regs.CtrlIdetLvlLo
		case IntTriggerHigh:
			idet = regs.CtrlIdetLvlHi
		default:
			return ErrInvalidTrigger
		}
	case IntModeEdge:
		switch trig {
		case IntTriggerLow:
			idet = regs.CtrlIdetFEdge
		case IntTriggerHigh:
			idet = regs.CtrlIdetREdge
		case IntTriggerBoth:
			idet = regs.CtrlIdetBEdge
		default:
			return ErrInvalidTrigger
		}
	default:
		return ErrInvalidTrigger
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bit := uint32(1) << pin

	// Stop the aggregator from forwarding this pin while the detection
	// field changes.
	if p.cfg.IntrCapable {
		p.io.Write32(p.girqAddr(regs.GirqEnClr), bit)
	}

	p.io.Modify32(p.ctrlAddr(pin), regs.CtrlIdetMask, idet)

	// The detection circuitry latches asynchronously to the bus write
	// that configures it. Without the barrier the source clear below
	// could race the new mode becoming effective.
	p.io.Barrier()

	if mode != IntModeDisabled {
		// Clear a stale latched event, then resume forwarding.
		p.io.Write32(p.girqAddr(regs.GirqSrc), bit)
		p.io.Write32(p.girqAddr(regs.GirqEnSet), bit)
	}

	return nil
}
