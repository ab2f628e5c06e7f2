package cmsdkuart

import (
	"bytes"
	"fmt"
	"testing"

	"neobios/hal/sim"
)

func newLoopback() (*UART, *sim.UART) {
	dev := sim.NewUART(sim.UARTConfig{Loopback: true})
	return New(dev), dev
}

func TestEnableProgramsDividerAndControl(t *testing.T) {
	tests := []struct {
		baud, clock, div uint32
	}{
		{115200, 25_000_000, 217},
		{9600, 25_000_000, 2604},
		{1, 16, 16},
	}
	for _, tt := range tests {
		u, dev := newLoopback()
		u.Enable(tt.baud, tt.clock)
		if got := dev.Divider(); got != tt.div {
			t.Fatalf("Enable(%d, %d) divider = %d, want %d", tt.baud, tt.clock, got, tt.div)
		}
		if got := dev.Control(); got != ControlTxEnable|ControlRxEnable {
			t.Fatalf("control = %#x, want TX|RX", got)
		}
		if !u.Enabled() {
			t.Fatal("Enabled() = false after Enable")
		}
	}
}

func TestReceiveEmptyDoesNotWait(t *testing.T) {
	u, _ := newLoopback()
	u.Enable(115200, 25_000_000)
	if b, ok := u.Receive(); ok {
		t.Fatalf("Receive() = %q, true; want nothing", b)
	}
}

func TestTransmitReceiveLoopback(t *testing.T) {
	u, _ := newLoopback()
	u.Enable(115200, 25_000_000)

	for _, b := range []byte{0x00, 'z', 0xff} {
		u.Transmit(b)
		got, ok := u.Receive()
		if !ok || got != b {
			t.Fatalf("Receive() = %#x, %v; want %#x, true", got, ok, b)
		}
	}
}

func TestSendExpandsNewlines(t *testing.T) {
	u, dev := newLoopback()
	u.Enable(115200, 25_000_000)

	if n := u.Send([]byte("a\nb"), 0); n != 3 {
		t.Fatalf("Send() = %d, want 3", n)
	}
	want := []byte{'a', '\r', '\n', 'b'}
	if got := dev.Transmitted(); !bytes.Equal(got, want) {
		t.Fatalf("wire = %q, want %q", got, want)
	}

	var rx []byte
	for {
		b, ok := u.Receive()
		if !ok {
			break
		}
		rx = append(rx, b)
	}
	if !bytes.Equal(rx, want) {
		t.Fatalf("looped back %q, want %q", rx, want)
	}
}

func TestSendPartialWhenFull(t *testing.T) {
	const capacity = 3
	dev := sim.NewUART(sim.UARTConfig{TxCapacity: capacity})
	u := New(dev)
	u.Enable(115200, 25_000_000)

	data := []byte("abcdef")
	if n := u.Send(data, 16); n != capacity {
		t.Fatalf("Send() = %d, want %d", n, capacity)
	}
	if got := dev.Transmitted(); !bytes.Equal(got, data[:capacity]) {
		t.Fatalf("wire = %q, want %q", got, data[:capacity])
	}
}

func TestSendResumesAfterDrain(t *testing.T) {
	dev := sim.NewUART(sim.UARTConfig{TxCapacity: 1})
	u := New(dev)
	u.Enable(115200, 25_000_000)

	if !u.TryTransmit('x') {
		t.Fatal("TryTransmit() = false on empty transmitter")
	}
	if u.TryTransmit('y') {
		t.Fatal("TryTransmit() = true on full transmitter")
	}
	dev.Drain(1)
	if !u.TryTransmit('y') {
		t.Fatal("TryTransmit() = false after drain")
	}
}

func TestWriterFormats(t *testing.T) {
	u, dev := newLoopback()
	u.Enable(115200, 25_000_000)

	fmt.Fprintf(u.Writer(), "BIOS %s\n", "1.0")
	if got, want := string(dev.Transmitted()), "BIOS 1.0\r\n"; got != want {
		t.Fatalf("wire = %q, want %q", got, want)
	}
}

func TestSendRetryKeepsCRLFPairs(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		first    int
	}{
		{"full between CR and LF", 2, 2},
		{"full before CR", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := sim.NewUART(sim.UARTConfig{TxCapacity: tt.capacity})
			u := New(dev)
			u.Enable(115200, 25_000_000)

			data := []byte("a\nb")
			n := u.Send(data, 8)
			if n != tt.first {
				t.Fatalf("Send() = %d, want %d", n, tt.first)
			}
			if got := u.Send(data[n:], 8); got != 0 {
				t.Fatalf("Send() on a full transmitter = %d, want 0", got)
			}

			for n < len(data) {
				dev.Drain(tt.capacity)
				n += u.Send(data[n:], 8)
			}
			if got, want := string(dev.Transmitted()), "a\r\nb"; got != want {
				t.Fatalf("wire = %q, want %q", got, want)
			}
		})
	}
}

func TestWriterFlushesOwedLineFeed(t *testing.T) {
	dev := sim.NewUART(sim.UARTConfig{TxCapacity: 2})
	u := New(dev)
	u.Enable(115200, 25_000_000)

	if n := u.Send([]byte("a\n"), 8); n != 2 {
		t.Fatalf("Send() = %d, want 2", n)
	}
	dev.Drain(2)
	u.Writer().WriteString("z")
	if got, want := string(dev.Transmitted()), "a\r\nz"; got != want {
		t.Fatalf("wire = %q, want %q", got, want)
	}
}
