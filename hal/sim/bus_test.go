package sim

import (
	"testing"

	"neobios/hal/mmio"
)

type recorder struct {
	stores map[mmio.Offset]uint32
}

func (r *recorder) Load(off mmio.Offset) uint32 { return r.stores[off] }
func (r *recorder) Store(off mmio.Offset, v uint32) {
	if r.stores == nil {
		r.stores = make(map[mmio.Offset]uint32)
	}
	r.stores[off] = v
}

func TestBusWindowOffsets(t *testing.T) {
	var bus Bus
	dev := &recorder{}
	if err := bus.Map(0x4000_0000, 0x100, dev); err != nil {
		t.Fatalf("Map: %v", err)
	}

	w, ok := bus.Window(0x4000_0010)
	if !ok {
		t.Fatal("Window() ok = false, want true")
	}
	w.Store(0x04, 7)
	if got := dev.stores[0x14]; got != 7 {
		t.Fatalf("device offset 0x14 = %d, want 7", got)
	}
	if got := w.Load(0x04); got != 7 {
		t.Fatalf("Load(0x04) = %d, want 7", got)
	}
}

func TestBusUnmapped(t *testing.T) {
	var bus Bus
	if err := bus.Map(0x1000, 0x100, &recorder{}); err != nil {
		t.Fatalf("Map: %v", err)
	}
	for _, addr := range []uintptr{0x0fff, 0x1100, 0} {
		if _, ok := bus.Window(addr); ok {
			t.Fatalf("Window(%#x) ok = true, want false", addr)
		}
	}
}

func TestBusRejectsOverlap(t *testing.T) {
	var bus Bus
	if err := bus.Map(0x1000, 0x100, &recorder{}); err != nil {
		t.Fatalf("Map: %v", err)
	}
	tests := []struct {
		base, size uintptr
		ok         bool
	}{
		{0x0f00, 0x100, true},
		{0x10ff, 0x10, false},
		{0x0f80, 0x100, false},
		{0x1100, 0x100, true},
		{0x2000, 0, false},
	}
	for _, tt := range tests {
		err := bus.Map(tt.base, tt.size, &recorder{})
		if (err == nil) != tt.ok {
			t.Fatalf("Map(%#x, %#x) err = %v, want ok=%v", tt.base, tt.size, err, tt.ok)
		}
	}
}
