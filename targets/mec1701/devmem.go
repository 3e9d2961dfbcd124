//go:build linux && !tinygo

package mec1701

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"xecgpio/regs"
)

// Mapped physical windows. The GPIO window covers the delay register,
// the control word array and the parallel in/out registers; the ECIA
// window covers the aggregator blocks and the block enables.
const (
	gpioWindowBase uintptr = 0x40080000
	gpioWindowSize         = 0x2000

	eciaWindowBase uintptr = regs.GirqBase
	eciaWindowSize         = 0x1000
)

// DevMem is a core.RegisterIO over /dev/mem, for bring-up and debugging
// from a Linux host that has the EC register space in its physical
// address map.
type DevMem struct {
	f    *os.File
	gpio []byte
	ecia []byte
}

// OpenDevMem maps the GPIO and aggregator windows.
func OpenDevMem() (*DevMem, error) {
	f, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("open /dev/mem: %w", err)
	}

	gpio, err := unix.Mmap(int(f.Fd()), int64(gpioWindowBase), gpioWindowSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap gpio window: %w", err)
	}

	ecia, err := unix.Mmap(int(f.Fd()), int64(eciaWindowBase), eciaWindowSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Munmap(gpio)
		f.Close()
		return nil, fmt.Errorf("mmap ecia window: %w", err)
	}

	return &DevMem{f: f, gpio: gpio, ecia: ecia}, nil
}

// Close unmaps the windows.
func (d *DevMem) Close() error {
	var first error
	for _, m := range [][]byte{d.gpio, d.ecia} {
		if m != nil {
			if err := unix.Munmap(m); err != nil && first == nil {
				first = err
			}
		}
	}
	d.gpio, d.ecia = nil, nil
	if err := d.f.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

func (d *DevMem) reg(addr uintptr) *uint32 {
	switch {
	case addr >= gpioWindowBase && addr < gpioWindowBase+gpioWindowSize:
		return (*uint32)(unsafe.Pointer(&d.gpio[addr-gpioWindowBase]))
	case addr >= eciaWindowBase && addr < eciaWindowBase+eciaWindowSize:
		return (*uint32)(unsafe.Pointer(&d.ecia[addr-eciaWindowBase]))
	}
	panic(fmt.Sprintf("mec1701: address %#x outside mapped windows", addr))
}

func (d *DevMem) Read32(addr uintptr) uint32 {
	return atomic.LoadUint32(d.reg(addr))
}

func (d *DevMem) Write32(addr uintptr, value uint32) {
	atomic.StoreUint32(d.reg(addr), value)
}

func (d *DevMem) Modify32(addr uintptr, mask, value uint32) {
	r := d.reg(addr)
	atomic.StoreUint32(r, (atomic.LoadUint32(r)&^mask)|(value&mask))
}

// Barrier reads a read-only register in the same AHB segment; the bus
// round-trip flushes any posted write ahead of it.
func (d *DevMem) Barrier() {
	atomic.LoadUint32(d.reg(regs.DlyAddr))
}
