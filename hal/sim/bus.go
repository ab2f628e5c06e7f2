// Package sim models board peripherals so the firmware can run on a host.
package sim

import (
	"fmt"
	"sort"
	"sync"

	"neobios/hal/mmio"
)

type region struct {
	base uintptr
	size uintptr
	dev  mmio.Window
}

// Bus decodes physical addresses to simulated peripherals.
type Bus struct {
	mu      sync.Mutex
	regions []region
}

// Map attaches dev to [base, base+size). Offsets seen by dev are relative to
// base.
func (b *Bus) Map(base, size uintptr, dev mmio.Window) error {
	if size == 0 {
		return fmt.Errorf("sim: map %#x: empty region", base)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, r := range b.regions {
		if base < r.base+r.size && r.base < base+size {
			return fmt.Errorf("sim: map %#x+%#x overlaps %#x+%#x", base, size, r.base, r.size)
		}
	}
	b.regions = append(b.regions, region{base: base, size: size, dev: dev})
	sort.Slice(b.regions, func(i, j int) bool { return b.regions[i].base < b.regions[j].base })
	return nil
}

// Window returns a register window starting at addr, which must fall inside
// a mapped region.
func (b *Bus) Window(addr uintptr) (mmio.Window, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, r := range b.regions {
		if addr >= r.base && addr < r.base+r.size {
			return view{dev: r.dev, delta: mmio.Offset(addr - r.base)}, true
		}
	}
	return nil, false
}

type view struct {
	dev   mmio.Window
	delta mmio.Offset
}

func (v view) Load(off mmio.Offset) uint32     { return v.dev.Load(v.delta + off) }
func (v view) Store(off mmio.Offset, x uint32) { v.dev.Store(v.delta+off, x) }
