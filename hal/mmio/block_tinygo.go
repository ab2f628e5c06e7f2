//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// Block is a register window over physical memory starting at a fixed base
// address.
type Block struct {
	base uintptr
}

// NewBlock returns the register window at base.
func NewBlock(base uintptr) Block { return Block{base: base} }

// Base returns the physical address of the window.
func (b Block) Base() uintptr { return b.base }

func (b Block) reg(off Offset) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(b.base + uintptr(off)))
}

func (b Block) Load(off Offset) uint32 { return b.reg(off).Get() }

func (b Block) Store(off Offset, v uint32) { b.reg(off).Set(v) }
