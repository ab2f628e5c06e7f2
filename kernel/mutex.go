package kernel

import (
	"errors"
	"sync/atomic"
)

// ErrContention is the fault raised when a held Mutex is locked again.
var ErrContention = errors.New("kernel: concurrent locks")

// Mutex guards a single value without ever blocking.
//
// The firmware runs one thread of control, so a Mutex that is already held
// can only mean reentrancy: a guarded operation calling another, or a fault
// taken while the lock is held. Lock reports that through Fatal instead of
// waiting. The zero value is an unlocked Mutex holding the zero T.
type Mutex[T any] struct {
	_      [0]func() // prevent accidental copying.
	locked atomic.Bool
	value  T
}

// NewMutex returns an unlocked Mutex holding v.
func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{value: v}
}

// TryLock acquires m, or returns ErrContention if it is already held.
func (m *Mutex[T]) TryLock() (Guard[T], error) {
	if !m.locked.CompareAndSwap(false, true) {
		return Guard[T]{}, ErrContention
	}
	return Guard[T]{m: m}, nil
}

// Lock acquires m. Contention is fatal and Lock does not return in that case.
func (m *Mutex[T]) Lock() Guard[T] {
	g, err := m.TryLock()
	if err != nil {
		Fatal(err)
	}
	return g
}

// Do runs fn with exclusive access to the value. The lock is released on
// every way out of fn, panics included.
func (m *Mutex[T]) Do(fn func(v *T)) {
	g := m.Lock()
	defer g.Unlock()
	fn(g.Value())
}

// Locked reports whether m is currently held.
func (m *Mutex[T]) Locked() bool {
	return m.locked.Load()
}

// Guard is exclusive access to the value of a locked Mutex.
//
// The pointer returned by Value must not be kept after Unlock.
type Guard[T any] struct {
	m *Mutex[T]
}

// Value returns the guarded value, or nil once the guard is released.
func (g *Guard[T]) Value() *T {
	if g.m == nil {
		return nil
	}
	return &g.m.value
}

// Unlock releases the Mutex. Later calls do nothing.
func (g *Guard[T]) Unlock() {
	m := g.m
	if m == nil {
		return
	}
	g.m = nil
	m.locked.Store(false)
}
