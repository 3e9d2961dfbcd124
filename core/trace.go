package core

import "fmt"

// TraceWriter receives one line per traced register access. Platform or
// host code points it at a UART, a log file or stdout.
type TraceWriter func(s string)

// TraceIO wraps a RegisterIO and reports every access through a
// TraceWriter before forwarding it. Tracing preserves access order, so a
// trace of a configuration sequence shows the exact write ordering the
// engines produced.
type TraceIO struct {
	IO RegisterIO
	W  TraceWriter
}

// NewTraceIO wraps io with tracing. A nil writer discards the trace.
func NewTraceIO(io RegisterIO, w TraceWriter) *TraceIO {
	if w == nil {
		w = func(string) {}
	}
	return &TraceIO{IO: io, W: w}
}

func (t *TraceIO) Read32(addr uintptr) uint32 {
	v := t.IO.Read32(addr)
	t.W(fmt.Sprintf("rd  %08x -> %08x", addr, v))
	return v
}

func (t *TraceIO) Write32(addr uintptr, value uint32) {
	t.W(fmt.Sprintf("wr  %08x <- %08x", addr, value))
	t.IO.Write32(addr, value)
}

func (t *TraceIO) Modify32(addr uintptr, mask, value uint32) {
	t.W(fmt.Sprintf("rmw %08x <- %08x & %08x", addr, value, mask))
	t.IO.Modify32(addr, mask, value)
}

func (t *TraceIO) Barrier() {
	t.W("barrier")
	t.IO.Barrier()
}
