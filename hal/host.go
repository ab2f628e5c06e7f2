//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"neobios/hal/mmio"
	"neobios/hal/sim"
)

// DefaultRAMBytes is the OS arena size when HostConfig leaves it unset.
const DefaultRAMBytes = 256 << 10

// HostConfig configures the simulated board.
type HostConfig struct {
	// RAMBytes sizes the OS memory arena. Zero selects DefaultRAMBytes.
	RAMBytes int

	// Loopback wires the UART transmitter to its own receiver.
	Loopback bool

	// TxCapacity limits the UART transmitter; zero never fills.
	TxCapacity int

	// Output receives UART transmit bytes. Nil means os.Stdout.
	Output io.Writer

	// Log receives log lines. Nil means os.Stderr.
	Log io.Writer

	// OnHalt runs on the halting goroutine just before it stops.
	OnHalt func()
}

// HostBoard is a Board simulated in process memory.
type HostBoard struct {
	cfg    HostConfig
	logger *hostLogger
	bus    sim.Bus
	uart   *sim.UART
	ram    []byte
	start  time.Time
	periph latch
	halted atomic.Bool
	frame  frameMirror
}

// frameMirror holds a copy of the firmware's video memory for other
// goroutines. src belongs to the firmware goroutine; buf is guarded by mu.
type frameMirror struct {
	src []byte

	mu  sync.Mutex
	buf []byte
}

func (m *frameMirror) publish() {
	if m.src == nil {
		return
	}
	m.mu.Lock()
	m.buf = append(m.buf[:0], m.src...)
	m.mu.Unlock()
}

// New returns a host board with default settings.
func New() Board {
	b, err := NewHost(HostConfig{})
	if err != nil {
		panic(err)
	}
	return b
}

// NewHost builds a host board from cfg.
func NewHost(cfg HostConfig) (*HostBoard, error) {
	if cfg.RAMBytes < 0 {
		return nil, fmt.Errorf("hal: invalid RAM size %d", cfg.RAMBytes)
	}
	if cfg.RAMBytes == 0 {
		cfg.RAMBytes = DefaultRAMBytes
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Log == nil {
		cfg.Log = os.Stderr
	}

	b := &HostBoard{
		cfg:    cfg,
		logger: &hostLogger{w: cfg.Log},
		ram:    make([]byte, cfg.RAMBytes),
		start:  time.Now(),
	}
	b.uart = sim.NewUART(sim.UARTConfig{
		TxCapacity: cfg.TxCapacity,
		Loopback:   cfg.Loopback,
		Sink:       cfg.Output,
	})
	if err := b.bus.Map(UART0Base, sim.UARTSize, b.uart); err != nil {
		return nil, fmt.Errorf("hal: map uart0: %w", err)
	}
	return b, nil
}

func (b *HostBoard) Logger() Logger { return b.logger }

func (b *HostBoard) TakePeripherals() (*Peripherals, bool) {
	if !b.periph.take() {
		return nil, false
	}
	return &Peripherals{UART0: b.Registers(UART0Base)}, true
}

// Registers panics if nothing is mapped at base, as a bus fault would.
func (b *HostBoard) Registers(base uintptr) mmio.Window {
	w, ok := b.bus.Window(base)
	if !ok {
		panic(fmt.Sprintf("hal: bus fault at %#x", base))
	}
	return w
}

func (b *HostBoard) AppRAM() Region {
	return Region{
		Start:  uintptr(unsafe.Pointer(unsafe.SliceData(b.ram))),
		Length: uintptr(len(b.ram)),
	}
}

// RAM returns the OS arena itself.
func (b *HostBoard) RAM() []byte { return b.ram }

func (b *HostBoard) Ticks() uint64 {
	return uint64(time.Since(b.start) / time.Microsecond)
}

// Idle publishes the shown framebuffer, then sleeps for a millisecond.
func (b *HostBoard) Idle() {
	b.frame.publish()
	time.Sleep(time.Millisecond)
}

// ShowFramebuffer sets the video memory that Idle copies out for Frame. Call
// it from the firmware goroutine, the same one that writes fb.
func (b *HostBoard) ShowFramebuffer(fb []byte) {
	b.frame.src = fb
	b.frame.publish()
}

// Frame copies the most recently published video memory into dst, reusing
// its storage, and returns it. It returns nil before the first publish.
func (b *HostBoard) Frame(dst []byte) []byte {
	b.frame.mu.Lock()
	defer b.frame.mu.Unlock()
	if b.frame.buf == nil {
		return nil
	}
	return append(dst[:0], b.frame.buf...)
}

// Halt marks the board halted, runs OnHalt and ends the calling goroutine.
func (b *HostBoard) Halt() {
	b.halted.Store(true)
	if b.cfg.OnHalt != nil {
		b.cfg.OnHalt()
	}
	runtime.Goexit()
}

// Halted reports whether Halt has been called.
func (b *HostBoard) Halted() bool { return b.halted.Load() }

// UART0 exposes the simulated UART for input injection and inspection.
func (b *HostBoard) UART0() *sim.UART { return b.uart }

// ErrHalted is returned by the host runners once the firmware halts.
var ErrHalted = errors.New("hal: firmware halted")

// ErrFirmwareReturned is returned when the firmware function returns, which
// a correct firmware never does.
var ErrFirmwareReturned = errors.New("hal: firmware returned")

// Start runs fw on its own goroutine. The returned channel closes when fw
// returns or halts.
func (b *HostBoard) Start(fw func(Board)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fw(b)
	}()
	return done
}

// exitErr maps a finished firmware goroutine to its error.
func (b *HostBoard) exitErr() error {
	if b.Halted() {
		return ErrHalted
	}
	return ErrFirmwareReturned
}

type hostLogger struct {
	mu   sync.Mutex
	w    io.Writer
	crlf bool
}

func (l *hostLogger) setCRLF(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.crlf = on
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s)
	l.eol()
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.eol()
}

func (l *hostLogger) eol() {
	if l.crlf {
		l.w.Write([]byte{'\r', '\n'})
		return
	}
	l.w.Write([]byte{'\n'})
}
