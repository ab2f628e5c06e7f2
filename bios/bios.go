// Package bios implements the firmware side of the operation table.
//
// All hardware state sits in one Hardware value behind a kernel.Mutex. It is
// installed once during boot and lives until power off; every slot that
// touches a device takes the mutex for exactly the duration of the register
// access.
package bios

import (
	"errors"
	"sync"

	"neobios/api"
	"neobios/drivers/cmsdkuart"
	"neobios/hal"
	"neobios/internal/buildinfo"
	"neobios/internal/textmode"
	"neobios/kernel"
)

// ConsoleBaud is the serial console rate used at boot and advertised in the
// configuration block.
const ConsoleBaud = 115_200

var (
	ErrNotInstalled     = errors.New("bios: hardware not installed")
	ErrAlreadyInstalled = errors.New("bios: hardware already installed")
)

// Hardware is the firmware's handle on the board devices.
type Hardware struct {
	Peripherals *hal.Peripherals
	UART0       *cmsdkuart.UART

	clock wallClock
}

// NewHardware wraps the peripheral token. UART0 drives the token's UART
// window.
func NewHardware(p *hal.Peripherals) *Hardware {
	return &Hardware{
		Peripherals: p,
		UART0:       cmsdkuart.New(p.UART0),
	}
}

// Firmware is one running BIOS instance.
type Firmware struct {
	board hal.Board
	hw    kernel.Mutex[*Hardware]
	vram  [textmode.Size]byte

	tableOnce sync.Once
	table     *api.Table
}

// New returns firmware for b with no hardware installed yet.
func New(b hal.Board) *Firmware {
	return &Firmware{board: b}
}

// Version is the BIOS version string.
func Version() string { return buildinfo.Short() }

// Install stores h as the hardware handle. A second Install is fatal.
func (f *Firmware) Install(h *Hardware) {
	f.hw.Do(func(slot **Hardware) {
		if *slot != nil {
			kernel.Fatal(ErrAlreadyInstalled)
		}
		*slot = h
	})
}

// Installed reports whether Install has run.
func (f *Firmware) Installed() bool {
	var ok bool
	f.hw.Do(func(slot **Hardware) { ok = *slot != nil })
	return ok
}

// withHardware runs fn holding the guard. Using the hardware before Install
// is fatal.
func (f *Firmware) withHardware(fn func(h *Hardware)) {
	f.hw.Do(func(slot **Hardware) {
		if *slot == nil {
			kernel.Fatal(ErrNotInstalled)
		}
		fn(*slot)
	})
}

// VRAM returns the text-mode video memory.
func (f *Firmware) VRAM() []byte { return f.vram[:] }
