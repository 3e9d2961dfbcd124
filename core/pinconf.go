package core

import "xecgpio/regs"

// Configure applies a symbolic flag set to one pin.
//
// The parallel output bits are writable only while the pin's AOD bit is
// set. To preload an output value without glitching the pad we must:
// set AOD with the direction still input, program the new value in the
// parallel output register, program the remaining control bits except
// direction, and only then flip the direction bit to output. The output
// driver therefore turns on already holding the requested level.
func (p *Port) Configure(pin uint8, flags PinFlags) error {
	if !p.cfg.valid(pin) {
		return ErrInvalidPin
	}

	// "Open source" drive is not implemented by this family.
	if flags&SingleEnded != 0 && flags&LineOpenDrain == 0 {
		return ErrUnsupportedMode
	}

	// First write keeps direction as input, enables the input pad and
	// ungates pad power.
	mask := regs.CtrlDirMask | regs.CtrlInpadDisMask | regs.CtrlPwrgMask
	pcr1 := regs.CtrlDirInput

	// Pull resistor selection.
	mask |= regs.CtrlPUDMask
	if flags&PullUp != 0 {
		pcr1 |= regs.CtrlPUDUp
	} else if flags&PullDown != 0 {
		pcr1 |= regs.CtrlPUDDown
	}

	// Push-pull or open drain.
	mask |= regs.CtrlBuftMask
	if flags&OpenDrain == OpenDrain {
		pcr1 |= regs.CtrlBuftOpenDrain
	} else {
		pcr1 |= regs.CtrlBuftPushPull
	}

	// Let the parallel output register control the pad instead of the
	// control register (alternate output disable).
	mask |= regs.CtrlAODMask
	pcr1 |= regs.CtrlAODDis

	// A bare disconnect request also gates pad power off.
	if flags == Disconnected {
		pcr1 |= regs.CtrlPwrgOff
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Commit with AOD set and direction input. The hardware now lets us
	// set the parallel output bit for this pin, and with the pad still
	// an input no glitch reaches it.
	ctrl := p.ctrlAddr(pin)
	p.io.Modify32(ctrl, mask, pcr1)

	if flags&Output != 0 {
		if flags&OutputInitHigh != 0 {
			p.io.Modify32(p.cfg.OutAddr, 1<<pin, 1<<pin)
		} else if flags&OutputInitLow != 0 {
			p.io.Modify32(p.cfg.OutAddr, 1<<pin, 0)
		}

		// Direction flips to output last.
		p.io.Modify32(ctrl, regs.CtrlDirMask, regs.CtrlDirOutput)
	}

	return nil
}
