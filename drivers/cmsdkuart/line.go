package cmsdkuart

// Send transmits p with every '\n' expanded to "\r\n" and returns how many
// bytes of p went out.
//
// With patience <= 0 Send spins until each byte is accepted. Otherwise it
// stops once the transmitter has reported full on patience consecutive
// polls; the byte it was waiting on is not counted. A "\r\n" pair is never
// split across calls: if the '\r' went out but the '\n' did not, the '\n' is
// counted as sent and goes out first on the next call.
func (u *UART) Send(p []byte, patience int) int {
	if !u.flushLF(patience) {
		return 0
	}
	for i, b := range p {
		if b == '\n' {
			if !u.push('\r', patience) {
				return i
			}
			if !u.push('\n', patience) {
				u.owedLF = true
				return i + 1
			}
			continue
		}
		if !u.push(b, patience) {
			return i
		}
	}
	return len(p)
}

// flushLF sends a '\n' left over from a split pair.
func (u *UART) flushLF(patience int) bool {
	if !u.owedLF {
		return true
	}
	if !u.push('\n', patience) {
		return false
	}
	u.owedLF = false
	return true
}

func (u *UART) push(b byte, patience int) bool {
	if patience <= 0 {
		u.Transmit(b)
		return true
	}
	for polls := 0; polls < patience; polls++ {
		if u.TryTransmit(b) {
			return true
		}
	}
	return false
}

// Writer returns an io.Writer that sends through u with newline expansion,
// blocking until every byte is accepted.
func (u *UART) Writer() Writer { return Writer{u: u} }

// Writer is the blocking text stream of a UART.
type Writer struct {
	u *UART
}

func (w Writer) Write(p []byte) (int, error) {
	return w.u.Send(p, 0), nil
}

func (w Writer) WriteString(s string) (int, error) {
	w.u.flushLF(0)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			w.u.Transmit('\r')
		}
		w.u.Transmit(s[i])
	}
	return len(s), nil
}
