package sim

import (
	"io"
	"sync"

	"neobios/hal/mmio"
)

// Register map of the CMSDK APB UART.
const (
	UARTData      mmio.Offset = 0x00
	UARTState     mmio.Offset = 0x04
	UARTCtrl      mmio.Offset = 0x08
	UARTIntStatus mmio.Offset = 0x0c
	UARTBaudDiv   mmio.Offset = 0x10

	// UARTSize is the length of the register block.
	UARTSize = 0x1000
)

// TxRecordLimit is how many of the most recently transmitted bytes a UART
// keeps for Transmitted. Older bytes only reach the Sink.
const TxRecordLimit = 64 << 10

const (
	stateTxFull = 1 << 0
	stateRxFull = 1 << 1

	ctrlTxEnable = 1 << 0
	ctrlRxEnable = 1 << 1
)

// UARTConfig selects the behaviour of a simulated UART.
type UARTConfig struct {
	// TxCapacity is how many bytes the transmitter holds before reporting
	// full. Zero means it drains instantly and is never full.
	TxCapacity int

	// Loopback feeds every transmitted byte back into the receiver.
	Loopback bool

	// Sink receives transmitted bytes. May be nil.
	Sink io.Writer
}

// UART models a CMSDK APB UART behind its register block.
type UART struct {
	mu      sync.Mutex
	cfg     UARTConfig
	ctrl    uint32
	bauddiv uint32
	pending int
	tx      []byte
	rx      []byte
	dropped int
}

// NewUART returns a UART model with transmitter and receiver disabled, as
// after reset.
func NewUART(cfg UARTConfig) *UART {
	return &UART{cfg: cfg}
}

func (u *UART) Load(off mmio.Offset) uint32 {
	u.mu.Lock()
	defer u.mu.Unlock()

	switch off {
	case UARTData:
		if len(u.rx) == 0 || u.ctrl&ctrlRxEnable == 0 {
			return 0
		}
		b := u.rx[0]
		u.rx = u.rx[1:]
		return uint32(b)
	case UARTState:
		var s uint32
		if u.txFull() {
			s |= stateTxFull
		}
		if len(u.rx) > 0 && u.ctrl&ctrlRxEnable != 0 {
			s |= stateRxFull
		}
		return s
	case UARTCtrl:
		return u.ctrl
	case UARTBaudDiv:
		return u.bauddiv
	default:
		return 0
	}
}

func (u *UART) Store(off mmio.Offset, v uint32) {
	u.mu.Lock()
	defer u.mu.Unlock()

	switch off {
	case UARTData:
		u.transmit(byte(v))
	case UARTCtrl:
		u.ctrl = v
	case UARTBaudDiv:
		u.bauddiv = v
	}
}

func (u *UART) txFull() bool {
	return u.cfg.TxCapacity > 0 && u.pending >= u.cfg.TxCapacity
}

func (u *UART) transmit(b byte) {
	if u.ctrl&ctrlTxEnable == 0 || u.txFull() {
		u.dropped++
		return
	}
	if u.cfg.TxCapacity > 0 {
		u.pending++
	}
	u.tx = append(u.tx, b)
	if len(u.tx) >= 2*TxRecordLimit {
		u.tx = append(u.tx[:0], u.tx[len(u.tx)-TxRecordLimit:]...)
	}
	if u.cfg.Sink != nil {
		_, _ = u.cfg.Sink.Write([]byte{b})
	}
	if u.cfg.Loopback {
		u.rx = append(u.rx, b)
	}
}

// Feed queues bytes as if they arrived on the RX line.
func (u *UART) Feed(p []byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rx = append(u.rx, p...)
}

// Drain frees room for n more bytes in a capacity-limited transmitter.
func (u *UART) Drain(n int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.pending = max(0, u.pending-n)
}

// Transmitted returns a copy of the bytes the transmitter accepted, at most
// the last TxRecordLimit of them.
func (u *UART) Transmitted() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	tx := u.tx
	if len(tx) > TxRecordLimit {
		tx = tx[len(tx)-TxRecordLimit:]
	}
	return append([]byte(nil), tx...)
}

// Dropped reports bytes written to the data register while the transmitter
// was disabled or full.
func (u *UART) Dropped() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.dropped
}

// Divider returns the last value written to the baud divider register.
func (u *UART) Divider() uint32 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.bauddiv
}

// Control returns the last value written to the control register.
func (u *UART) Control() uint32 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ctrl
}
