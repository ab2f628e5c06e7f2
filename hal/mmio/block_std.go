//go:build !tinygo

package mmio

import (
	"sync/atomic"
	"unsafe"
)

// Block is a register window over memory starting at a fixed base address.
//
// Outside TinyGo there is no volatile intrinsic; atomic loads and stores give
// the same guarantee (never elided, never reordered with each other). The
// memory behind base must not move, so it has to be a global or a heap
// object kept alive by the caller.
type Block struct {
	base uintptr
}

// NewBlock returns the register window at base.
func NewBlock(base uintptr) Block { return Block{base: base} }

// Base returns the address of the window.
func (b Block) Base() uintptr { return b.base }

func (b Block) reg(off Offset) *uint32 {
	return (*uint32)(unsafe.Pointer(b.base + uintptr(off)))
}

func (b Block) Load(off Offset) uint32 { return atomic.LoadUint32(b.reg(off)) }

func (b Block) Store(off Offset, v uint32) { atomic.StoreUint32(b.reg(off), v) }
