// Package demoos is a small OS that runs on the operation table when the
// real OS image is not linked in. It prints a banner, draws the text
// console, and runs a line-oriented monitor on the serial port.
package demoos

import (
	"fmt"
	"strings"

	"neobios/api"
	"neobios/internal/cfgblock"
	"neobios/internal/textmode"
)

const (
	prompt     = "> "
	maxLine    = 78
	statusRow  = textmode.Rows - 1
	bannerAttr = 0x1f
	textAttr   = 0x07
)

// OS is the monitor state.
type OS struct {
	t    *api.Table
	vram []byte
	line []byte
	row  int
}

// New checks that t has the layout this OS was built for.
func New(t *api.Table) (*OS, error) {
	if v := t.APIVersionGet(); !v.Compatible(api.APIVersion) {
		return nil, fmt.Errorf("demoos: BIOS API %v, need %v", v, api.APIVersion)
	}
	return &OS{t: t, vram: t.VideoGetFramebuffer()}, nil
}

// Main runs the monitor forever.
func Main(t *api.Table) {
	o, err := New(t)
	if err != nil {
		panic(err)
	}
	o.Banner()
	for {
		if !o.Poll() {
			t.PowerIdle()
		}
	}
}

// Banner prints the start-up text on both consoles.
func (o *OS) Banner() {
	title := fmt.Sprintf("Demo OS on BIOS %s (API %v)", o.t.BIOSVersionGet(), o.t.APIVersionGet())
	for col := 0; col < textmode.Cols; col++ {
		textmode.Put(o.vram, col, 0, ' ', bannerAttr)
	}
	textmode.PutString(o.vram, 0, 0, title, bannerAttr)
	o.row = 2

	o.printf("%s\n", title)
	if c, err := o.config(); err == nil {
		o.printf("serial console: %v at %d bps, vga console: %v\n", c.SerialConsole, c.SerialBaud, c.VGAConsole)
	}
	o.print(prompt)
}

// Poll handles pending serial input and reports whether there was any.
func (o *OS) Poll() bool {
	var buf [16]byte
	n, err := o.t.SerialRead(0, buf[:], nil)
	if err != nil || n == 0 {
		return false
	}
	for _, b := range buf[:n] {
		o.key(b)
	}
	return true
}

func (o *OS) key(b byte) {
	switch {
	case b == '\r' || b == '\n':
		o.print("\n")
		cmd := strings.TrimSpace(string(o.line))
		o.line = o.line[:0]
		if cmd != "" {
			o.run(cmd)
		}
		o.print(prompt)
	case b == 0x08 || b == 0x7f:
		if len(o.line) > 0 {
			o.line = o.line[:len(o.line)-1]
			o.print("\b \b")
		}
	case b >= ' ' && b < 0x7f && len(o.line) < maxLine:
		o.line = append(o.line, b)
		o.write([]byte{b})
	}
	o.status()
}

func (o *OS) run(cmd string) {
	o.console(prompt + cmd)
	switch cmd {
	case "help":
		o.print("commands: help ver mem time cfg panic\n")
	case "ver":
		o.printf("BIOS %s, API %v\n", o.t.BIOSVersionGet(), o.t.APIVersionGet())
	case "mem":
		for i := 0; i < 256; i++ {
			r, ok := o.t.MemoryGetRegion(uint8(i))
			if !ok {
				break
			}
			o.printf("region %d: %#x+%#x %v\n", i, r.Start, r.Length, r.Kind)
		}
	case "time":
		now := o.t.TimeClockGet()
		o.printf("%s, %d ticks at %d/s\n", now.Go().Format("2006-01-02 15:04:05"), o.t.TimeTicksGet(), o.t.TimeTicksPerSecond())
	case "cfg":
		c, err := o.config()
		if err != nil {
			o.printf("%v\n", err)
			return
		}
		o.printf("%+v\n", c)
	case "panic":
		panic("demoos: panic requested")
	default:
		o.printf("%s: unknown command\n", cmd)
	}
}

func (o *OS) config() (cfgblock.Config, error) {
	var buf [cfgblock.MaxSize]byte
	n, err := o.t.ConfigurationGet(buf[:])
	if err != nil {
		return cfgblock.Config{}, err
	}
	return cfgblock.Unmarshal(buf[:n])
}

// console appends a line to the text console, wrapping to the top.
func (o *OS) console(s string) {
	if o.row >= statusRow {
		o.row = 2
	}
	for col := 0; col < textmode.Cols; col++ {
		textmode.Put(o.vram, col, o.row, ' ', textAttr)
	}
	textmode.PutString(o.vram, 0, o.row, s, textAttr)
	o.row++
}

func (o *OS) status() {
	for col := 0; col < textmode.Cols; col++ {
		textmode.Put(o.vram, col, statusRow, ' ', bannerAttr)
	}
	textmode.PutString(o.vram, 0, statusRow, prompt+string(o.line), bannerAttr)
}

func (o *OS) printf(format string, args ...any) {
	o.print(fmt.Sprintf(format, args...))
}

func (o *OS) print(s string) { o.write([]byte(s)) }

// write pushes p out completely, idling while the port is busy.
func (o *OS) write(p []byte) {
	for len(p) > 0 {
		n, err := o.t.SerialWrite(0, p, nil)
		if err != nil {
			return
		}
		p = p[n:]
		if n == 0 {
			o.t.PowerIdle()
		}
	}
}
