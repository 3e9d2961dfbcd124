package core

// RegisterIO is the abstract register access interface that core code
// uses. Backend implementations map it onto real memory-mapped I/O, a
// serial debug monitor, or a simulated register bank for tests.
//
// Register access is assumed to always succeed; the bus has no fault
// reporting on this family.
type RegisterIO interface {
	// Read32 reads the 32-bit register at addr.
	Read32(addr uintptr) uint32

	// Write32 writes the 32-bit register at addr.
	Write32(addr uintptr, value uint32)

	// Modify32 performs a read-modify-write that replaces only the
	// fields selected by mask. Bits outside mask are preserved.
	Modify32(addr uintptr, mask, value uint32)

	// Barrier orders all preceding writes before any following access.
	// Needed where peripheral logic latches a configuration
	// asynchronously to the bus write that programmed it.
	Barrier()
}
