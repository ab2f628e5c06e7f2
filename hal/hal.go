// Package hal is the board layer. Firmware reaches the platform only
// through a Board.
package hal

import "neobios/hal/mmio"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// MPS3 AN547 memory map and clocks.
const (
	UART0Base       uintptr = 0x5930_3000
	PeripheralClock uint32  = 25_000_000

	// TicksPerSecond is the rate of Board.Ticks.
	TicksPerSecond = 1_000_000
)

// Region is a span of address space.
type Region struct {
	Start  uintptr
	Length uintptr
}

// Peripherals is the board's one-time device token. Whoever takes it owns
// the devices; there is exactly one per boot.
type Peripherals struct {
	UART0 mmio.Window
}

// Board is the platform the firmware runs on.
type Board interface {
	Logger() Logger

	// TakePeripherals hands out the device token the first time it is
	// called and reports false on every later call.
	TakePeripherals() (*Peripherals, bool)

	// Registers returns the register window at a physical address
	// without going through the token. Only the fault path uses it.
	Registers(base uintptr) mmio.Window

	// AppRAM is the memory set aside for the OS at link time.
	AppRAM() Region

	// Ticks counts at TicksPerSecond from boot.
	Ticks() uint64

	// Idle waits for the next interrupt, or briefly yields on a host.
	Idle()

	// Halt stops the firmware for good. It does not return.
	Halt()
}
