// Package app boots the firmware and owns the fault path.
package app

import (
	"errors"

	"neobios/api"
	"neobios/bios"
	"neobios/hal"
	"neobios/kernel"
)

// BootBaud is the UART rate set before the banner.
const BootBaud = bios.ConsoleBaud

var (
	ErrNoPeripherals = errors.New("app: couldn't get hardware")
	ErrOSReturned    = errors.New("app: OS entry returned")
)

// Entry is an OS entry point. It receives the operation table and must not
// return.
type Entry func(t *api.Table)

// Banner is the first line printed on the serial console.
func Banner() string {
	return "Neotron QEMU BIOS " + bios.Version()
}

// Run boots on b and hands control to entry. It does not return: the OS
// runs forever, and every failure ends on the fault path, which halts the
// board.
func Run(b hal.Board, entry Entry) {
	installPanicHandler(b)
	defer func() {
		if r := recover(); r != nil {
			kernel.Fatal(r)
		}
	}()

	l := b.Logger()

	p, ok := b.TakePeripherals()
	if !ok {
		kernel.Fatal(ErrNoPeripherals)
	}
	l.WriteLineString("boot: peripherals taken")

	hw := bios.NewHardware(p)
	hw.UART0.Enable(BootBaud, hal.PeripheralClock)
	hw.UART0.Writer().WriteString(Banner() + "\n")
	l.WriteLineString("boot: uart0 enabled")

	fw := bios.New(b)
	fw.Install(hw)
	l.WriteLineString("boot: hardware installed")

	l.WriteLineString("boot: entering OS")
	entry(fw.Table())

	kernel.Fatal(ErrOSReturned)
}
