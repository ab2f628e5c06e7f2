// Package cmsdkuart drives an Arm CMSDK APB UART through its memory-mapped
// registers.
//
// Apart from a line feed owed by a short Send, the driver keeps no state of
// its own. Everything lives in the peripheral, and the register window is
// fixed when the driver is built, so two drivers over the same window see the
// same device.
package cmsdkuart

import "neobios/hal/mmio"

const (
	regData    mmio.Offset = 0x00
	regStatus  mmio.Offset = 0x04
	regControl mmio.Offset = 0x08
	regBaudDiv mmio.Offset = 0x10
)

// Status register bits.
const (
	StatusTxFull     uint32 = 1 << 0
	StatusRxNonEmpty uint32 = 1 << 1
)

// Control register bits.
const (
	ControlTxEnable uint32 = 1 << 0
	ControlRxEnable uint32 = 1 << 1
)

// UART is one CMSDK UART instance.
type UART struct {
	regs   mmio.Window
	owedLF bool
}

// New returns a driver for the UART behind regs. It does not touch the
// hardware.
func New(regs mmio.Window) *UART {
	return &UART{regs: regs}
}

// Enable programs the baud divider for baud against a peripheral clock of
// clock Hz and turns on both transmitter and receiver.
//
// baud must be non-zero and no larger than clock; the driver does not check.
func (u *UART) Enable(baud, clock uint32) {
	u.regs.Store(regBaudDiv, clock/baud)
	u.regs.Store(regControl, ControlTxEnable|ControlRxEnable)
}

// Enabled reports whether the transmitter is on.
func (u *UART) Enabled() bool {
	return u.regs.Load(regControl)&ControlTxEnable != 0
}

// Status returns the raw status register.
func (u *UART) Status() uint32 {
	return u.regs.Load(regStatus)
}

// TryTransmit writes b if the transmitter has room and reports whether it did.
func (u *UART) TryTransmit(b byte) bool {
	if u.Status()&StatusTxFull != 0 {
		return false
	}
	u.regs.Store(regData, uint32(b))
	return true
}

// Transmit writes b, spinning while the transmitter is full. It never
// returns if the peripheral stops draining.
func (u *UART) Transmit(b byte) {
	for u.Status()&StatusTxFull != 0 {
	}
	u.regs.Store(regData, uint32(b))
}

// Receive returns the next received byte, or false at once if there is none.
func (u *UART) Receive() (byte, bool) {
	if u.Status()&StatusRxNonEmpty == 0 {
		return 0, false
	}
	return byte(u.regs.Load(regData)), true
}
