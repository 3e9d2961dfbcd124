package core

// Callback pairs a pin-interest mask with a handler. The same Callback
// value registered on a port stays registered until removed; dispatch
// invokes it whenever the latched result intersects its mask.
//
// Handlers run synchronously in interrupt context. They must not block
// and should do bounded work; anything longer belongs on a queue the
// handler feeds. The pins argument is the full latched result of the
// port, not filtered per callback, so a handler watching several pins
// applies its own mask to tell which of them fired.
type Callback struct {
	// Mask selects the pins this callback wants, bit n = pin n.
	Mask uint32

	// Handler is invoked with the owning port and the full latched
	// result snapshot.
	Handler func(p *Port, pins uint32)
}

// AddCallback registers cb. Adding a callback that is already registered
// is a no-op.
func (p *Port) AddCallback(cb *Callback) {
	p.cbMu.Lock()
	defer p.cbMu.Unlock()
	for _, c := range p.callbacks {
		if c == cb {
			return
		}
	}
	p.callbacks = append(p.callbacks, cb)
}

// RemoveCallback unregisters cb. Removing a callback that is not
// registered is a no-op.
func (p *Port) RemoveCallback(cb *Callback) {
	p.cbMu.Lock()
	defer p.cbMu.Unlock()
	for i, c := range p.callbacks {
		if c == cb {
			p.callbacks = append(p.callbacks[:i], p.callbacks[i+1:]...)
			return
		}
	}
}

// fireCallbacks invokes every callback whose mask intersects result.
// Iteration runs on a snapshot so a handler may add or remove callbacks,
// including itself, without corrupting the walk.
func (p *Port) fireCallbacks(result uint32) {
	p.cbMu.Lock()
	snapshot := make([]*Callback, len(p.callbacks))
	copy(snapshot, p.callbacks)
	p.cbMu.Unlock()

	for _, cb := range snapshot {
		if cb.Mask&result != 0 && cb.Handler != nil {
			cb.Handler(p, result)
		}
	}
}
