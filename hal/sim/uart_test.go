package sim

import (
	"bytes"
	"testing"
)

func TestUARTDisabledAfterReset(t *testing.T) {
	u := NewUART(UARTConfig{Loopback: true})
	u.Store(UARTData, 'x')
	if got := u.Transmitted(); len(got) != 0 {
		t.Fatalf("Transmitted() = %q, want nothing while disabled", got)
	}
	if got := u.Dropped(); got != 1 {
		t.Fatalf("Dropped() = %d, want 1", got)
	}
}

func TestUARTLoopback(t *testing.T) {
	var sink bytes.Buffer
	u := NewUART(UARTConfig{Loopback: true, Sink: &sink})
	u.Store(UARTCtrl, ctrlTxEnable|ctrlRxEnable)

	for _, b := range []byte("ok") {
		u.Store(UARTData, uint32(b))
	}
	if sink.String() != "ok" {
		t.Fatalf("sink = %q, want %q", sink.String(), "ok")
	}

	var got []byte
	for u.Load(UARTState)&stateRxFull != 0 {
		got = append(got, byte(u.Load(UARTData)))
	}
	if string(got) != "ok" {
		t.Fatalf("received %q, want %q", got, "ok")
	}
}

func TestUARTReceiverGatedByControl(t *testing.T) {
	u := NewUART(UARTConfig{})
	u.Feed([]byte{'a'})
	if s := u.Load(UARTState); s&stateRxFull != 0 {
		t.Fatalf("state = %#x, RX reported while receiver disabled", s)
	}
	u.Store(UARTCtrl, ctrlRxEnable)
	if s := u.Load(UARTState); s&stateRxFull == 0 {
		t.Fatalf("state = %#x, want RX non-empty", s)
	}
	if got := u.Load(UARTData); got != 'a' {
		t.Fatalf("data = %q, want 'a'", rune(got))
	}
}

func TestUARTCapacity(t *testing.T) {
	u := NewUART(UARTConfig{TxCapacity: 2})
	u.Store(UARTCtrl, ctrlTxEnable)

	u.Store(UARTData, '1')
	if s := u.Load(UARTState); s&stateTxFull != 0 {
		t.Fatal("TX full after one byte, want room for two")
	}
	u.Store(UARTData, '2')
	if s := u.Load(UARTState); s&stateTxFull == 0 {
		t.Fatal("TX not full after two bytes")
	}
	u.Store(UARTData, '3')
	if got := string(u.Transmitted()); got != "12" {
		t.Fatalf("Transmitted() = %q, want %q", got, "12")
	}

	u.Drain(1)
	if s := u.Load(UARTState); s&stateTxFull != 0 {
		t.Fatal("TX still full after Drain(1)")
	}
}

func TestUARTRegistersReadBack(t *testing.T) {
	u := NewUART(UARTConfig{})
	u.Store(UARTBaudDiv, 217)
	u.Store(UARTCtrl, 3)
	if u.Load(UARTBaudDiv) != 217 || u.Divider() != 217 {
		t.Fatalf("divider = %d, want 217", u.Divider())
	}
	if u.Load(UARTCtrl) != 3 || u.Control() != 3 {
		t.Fatalf("control = %d, want 3", u.Control())
	}
}

func TestUARTRecordIsBounded(t *testing.T) {
	var sink bytes.Buffer
	u := NewUART(UARTConfig{Sink: &sink})
	u.Store(UARTCtrl, ctrlTxEnable)

	total := 3*TxRecordLimit + 5
	for i := 0; i < total; i++ {
		u.Store(UARTData, uint32(i%251))
	}
	if sink.Len() != total {
		t.Fatalf("sink holds %d bytes, want %d", sink.Len(), total)
	}
	if cap(u.tx) > 4*TxRecordLimit {
		t.Fatalf("record capacity = %d, want it bounded near %d", cap(u.tx), 2*TxRecordLimit)
	}

	got := u.Transmitted()
	if len(got) != TxRecordLimit {
		t.Fatalf("len(Transmitted()) = %d, want %d", len(got), TxRecordLimit)
	}
	if !bytes.Equal(got, sink.Bytes()[total-TxRecordLimit:]) {
		t.Fatal("Transmitted() does not hold the most recent bytes")
	}
}
