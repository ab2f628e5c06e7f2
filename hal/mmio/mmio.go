// Package mmio provides ordered access to memory-mapped peripheral registers.
//
// Register accesses have side effects the compiler cannot see. Everything in
// this package reaches the device exactly once and in program order: nothing
// is cached in ordinary variables, merged or elided.
package mmio

// Offset is a byte offset from the base address of a register window.
type Offset uintptr

// Window is a block of 32-bit registers at fixed offsets from a base address.
type Window interface {
	Load(off Offset) uint32
	Store(off Offset, v uint32)
}
