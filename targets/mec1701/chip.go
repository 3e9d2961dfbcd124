// Package mec1701 carries the static port tables and the memory-mapped
// register backends for the MEC1701 embedded controller.
package mec1701

import (
	"xecgpio/core"
	"xecgpio/regs"
)

// Chip returns the port descriptors of the MEC1701. Pins are named in
// octal, bank by bank: bit n of port 0 is GPIO 0oo where oo is n in
// octal, bit n of port 1 is GPIO 040+n and so on. Valid-pin bitmaps
// exclude the positions that are not bonded out on this package.
func Chip() []core.PortConfig {
	chip := []core.PortConfig{
		{
			Name: "gpio000_036",
			// GPIO 001, 005 and 006 are not implemented.
			ValidPins:   0x7fffff9d,
			GirqID:      11,
			IntrCapable: true,
		},
		{
			Name: "gpio040_076",
			// GPIO 041 is not implemented.
			ValidPins:   0x7ffffffd,
			GirqID:      10,
			IntrCapable: true,
		},
		{
			Name: "gpio100_136",
			// GPIO 102 is not implemented.
			ValidPins:   0x7ffffffb,
			GirqID:      9,
			IntrCapable: true,
		},
		{
			Name: "gpio140_176",
			// GPIO 157 is not implemented.
			ValidPins:   0x7fff7fff,
			GirqID:      8,
			IntrCapable: true,
		},
		{
			Name:        "gpio200_236",
			ValidPins:   0x7fffffff,
			GirqID:      12,
			IntrCapable: true,
		},
		{
			Name: "gpio240_276",
			// The last bank ends at GPIO 275.
			ValidPins:   0x3fffffff,
			GirqID:      26,
			IntrCapable: true,
		},
	}

	for i := range chip {
		chip[i].CtrlBase = regs.PortCtrlBase(i)
		chip[i].InAddr = regs.PortInAddr(i)
		chip[i].OutAddr = regs.PortOutAddr(i)
	}
	return chip
}
