package app

import (
	"fmt"
	"strings"

	"neobios/drivers/cmsdkuart"
	"neobios/hal"
	"neobios/kernel"
)

func installPanicHandler(b hal.Board) {
	kernel.SetFaultHandler(func(f kernel.Fault) {
		Panic(b, f)
	})
}

// Panic reports f on UART0 and halts b.
//
// The normal path to the UART is through the hardware guard, which may be
// held by whatever faulted. Panic skips it and builds its own driver over
// the same registers. Nothing else may do this.
func Panic(b hal.Board, f kernel.Fault) {
	if l := b.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("fault: %v", f.Reason))
	}

	u := cmsdkuart.New(b.Registers(hal.UART0Base))
	if !u.Enabled() {
		u.Enable(BootBaud, hal.PeripheralClock)
	}
	w := u.Writer()
	w.WriteString("PANIC!\n")
	fmt.Fprintf(w, "%v\n", f.Reason)
	for _, line := range strings.Split(string(f.Stack), "\n") {
		if line == "" {
			continue
		}
		w.WriteString(line + "\n")
	}

	b.Halt()
}
