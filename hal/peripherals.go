package hal

import "sync/atomic"

// latch lets one caller through, once.
type latch struct {
	taken atomic.Bool
}

func (l *latch) take() bool {
	return l.taken.CompareAndSwap(false, true)
}
