//go:build !tinygo

package hal

import (
	"bytes"
	"errors"
	"os"

	"golang.org/x/term"
)

// ctrlC ends the session while the terminal is raw and no SIGINT arrives.
const ctrlC = 0x03

var errInterrupted = errors.New("hal: interrupted")

// Console forwards a host terminal to the simulated UART receiver. On a TTY
// it switches to raw mode so keystrokes arrive one at a time.
type Console struct {
	f     *os.File
	state *term.State
	in    chan []byte
}

// OpenConsole starts reading f. Close restores the terminal.
func OpenConsole(f *os.File) (*Console, error) {
	c := &Console{f: f, in: make(chan []byte, 16)}
	if fd := int(f.Fd()); term.IsTerminal(fd) {
		st, err := term.MakeRaw(fd)
		if err != nil {
			return nil, err
		}
		c.state = st
	}
	go c.read()
	return c, nil
}

// Raw reports whether the terminal was switched to raw mode.
func (c *Console) Raw() bool { return c.state != nil }

// Close restores the terminal mode. The reader goroutine stays blocked on
// the file until it is closed or the process exits.
func (c *Console) Close() error {
	if c.state == nil {
		return nil
	}
	err := term.Restore(int(c.f.Fd()), c.state)
	c.state = nil
	return err
}

func (c *Console) read() {
	defer close(c.in)
	for {
		buf := make([]byte, 64)
		n, err := c.f.Read(buf)
		if n > 0 {
			c.in <- buf[:n]
		}
		if err != nil {
			return
		}
	}
}

// forward moves whatever input is pending into the UART without blocking.
func (c *Console) forward(b *HostBoard) error {
	for {
		select {
		case p, ok := <-c.in:
			if !ok {
				c.in = nil
				return nil
			}
			if c.Raw() {
				if i := bytes.IndexByte(p, ctrlC); i >= 0 {
					b.uart.Feed(p[:i])
					return errInterrupted
				}
			}
			b.uart.Feed(p)
		default:
			return nil
		}
	}
}
