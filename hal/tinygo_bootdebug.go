//go:build tinygo && baremetal && bootdebug

package hal

import (
	"neobios/drivers/cmsdkuart"
	"neobios/hal/mmio"
)

// uartLogger writes straight to UART0, bypassing the peripheral token the
// same way the fault path does.
type uartLogger struct {
	uart *cmsdkuart.UART
}

func newLogger() Logger {
	return &uartLogger{uart: cmsdkuart.New(mmio.NewBlock(UART0Base))}
}

func (l *uartLogger) WriteLineString(s string) {
	if !l.uart.Enabled() {
		return
	}
	for i := 0; i < len(s); i++ {
		l.uart.Transmit(s[i])
	}
	l.uart.Transmit('\r')
	l.uart.Transmit('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	if !l.uart.Enabled() {
		return
	}
	for i := 0; i < len(b); i++ {
		l.uart.Transmit(b[i])
	}
	l.uart.Transmit('\r')
	l.uart.Transmit('\n')
}
