package kernel

import (
	"fmt"
	"sync/atomic"
)

// Fault describes an unrecoverable firmware error.
type Fault struct {
	Reason any
	Stack  []byte
}

func (f Fault) Error() string {
	return fmt.Sprintf("fault: %v", f.Reason)
}

// Unwrap exposes the reason when it is an error.
func (f Fault) Unwrap() error {
	err, _ := f.Reason.(error)
	return err
}

var (
	faultActive  atomic.Bool
	faultHandler atomic.Value // func(Fault)
)

// SetFaultHandler installs the process-wide fault handler. The handler is
// expected to report the fault and halt; it must not return.
func SetFaultHandler(fn func(Fault)) {
	faultHandler.Store(fn)
}

// InFault reports whether a fault handler is running.
func InFault() bool {
	return faultActive.Load()
}

// Fatal reports an unrecoverable error and does not return.
//
// The installed handler runs with the fault. A fault raised while the
// handler is running, or a handler that returns, ends in a Go panic
// carrying the Fault.
func Fatal(reason any) {
	f := Fault{Reason: reason, Stack: captureStack()}
	if !faultActive.CompareAndSwap(false, true) {
		panic(f)
	}
	defer faultActive.Store(false)

	if v := faultHandler.Load(); v != nil {
		if fn, ok := v.(func(Fault)); ok && fn != nil {
			fn(f)
		}
	}
	panic(f)
}
