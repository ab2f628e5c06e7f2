//go:build !tinygo

package mmio

import (
	"testing"
	"unsafe"
)

var testRegs [8]uint32

func TestBlockLoadStore(t *testing.T) {
	b := NewBlock(uintptr(unsafe.Pointer(&testRegs[0])))

	b.Store(0x10, 0xdead_beef)
	if got := testRegs[4]; got != 0xdead_beef {
		t.Fatalf("backing word = %#x, want %#x", got, 0xdead_beef)
	}

	testRegs[1] = 3
	if got := b.Load(0x04); got != 3 {
		t.Fatalf("Load(0x04) = %d, want 3", got)
	}

	if got := b.Base(); got != uintptr(unsafe.Pointer(&testRegs[0])) {
		t.Fatalf("Base() = %#x, want address of backing array", got)
	}
}

func TestBlockSatisfiesWindow(t *testing.T) {
	var _ Window = NewBlock(0)
}
