//go:build tinygo && baremetal

package hal

import (
	"device/arm"
	"time"
	"unsafe"

	"neobios/hal/mmio"
)

// Linker symbols bounding the OS arena. _ram_os_len is an absolute symbol:
// its address is the length.
//
//go:extern _ram_os_start
var ramOSStart [0]byte

//go:extern _ram_os_len
var ramOSLen [0]byte

type mps3Board struct {
	logger Logger
	start  time.Time
	periph latch
}

// New returns the MPS3 AN547 board.
func New() Board {
	return &mps3Board{
		logger: newLogger(),
		start:  time.Now(),
	}
}

func (b *mps3Board) Logger() Logger { return b.logger }

func (b *mps3Board) TakePeripherals() (*Peripherals, bool) {
	if !b.periph.take() {
		return nil, false
	}
	return &Peripherals{UART0: mmio.NewBlock(UART0Base)}, true
}

func (b *mps3Board) Registers(base uintptr) mmio.Window { return mmio.NewBlock(base) }

func (b *mps3Board) AppRAM() Region {
	return Region{
		Start:  uintptr(unsafe.Pointer(&ramOSStart)),
		Length: uintptr(unsafe.Pointer(&ramOSLen)),
	}
}

func (b *mps3Board) Ticks() uint64 {
	return uint64(time.Since(b.start) / time.Microsecond)
}

func (b *mps3Board) Idle() { arm.Asm("wfi") }

func (b *mps3Board) Halt() {
	for {
		arm.Asm("wfi")
	}
}
