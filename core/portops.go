package core

// Bulk operations address the whole 32-pin bank in one register access.
// Bits outside the valid-pin bitmap are not rejected here: they are
// inert positions in the hardware registers, and masking them off is the
// caller's business when per-pin semantics matter.

// SetMasked replaces the masked bits of the parallel output register
// with the corresponding bits of value.
func (p *Port) SetMasked(mask, value uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.io.Modify32(p.cfg.OutAddr, mask, mask&value)
}

// SetBits drives the masked pins high.
func (p *Port) SetBits(mask uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.io.Modify32(p.cfg.OutAddr, mask, mask)
}

// ClearBits drives the masked pins low.
func (p *Port) ClearBits(mask uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.io.Modify32(p.cfg.OutAddr, mask, 0)
}

// ToggleBits inverts the masked pins.
func (p *Port) ToggleBits(mask uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.io.Read32(p.cfg.OutAddr)
	p.io.Write32(p.cfg.OutAddr, out^mask)
}

// Get returns the parallel input register: the electrical level of every
// pad, regardless of direction. A single register read, so no lock.
func (p *Port) Get() uint32 {
	return p.io.Read32(p.cfg.InAddr)
}
