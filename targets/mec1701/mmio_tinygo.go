//go:build tinygo

package mec1701

import (
	"runtime/volatile"
	"unsafe"

	"device/arm"
)

// MMIO dereferences the register addresses directly. Only usable when
// running on the EC itself.
type MMIO struct{}

func (MMIO) Read32(addr uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

func (MMIO) Write32(addr uintptr, value uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), value)
}

func (MMIO) Modify32(addr uintptr, mask, value uint32) {
	r := (*uint32)(unsafe.Pointer(addr))
	volatile.StoreUint32(r, (volatile.LoadUint32(r)&^mask)|(value&mask))
}

// Barrier issues a data memory barrier; detection logic latches
// asynchronously to the configuring bus write.
func (MMIO) Barrier() {
	arm.Asm("dmb")
}
