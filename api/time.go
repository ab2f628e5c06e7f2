package api

import "time"

// Epoch is the zero of Time: 2000-01-01T00:00:00Z.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Time is wall-clock time as seconds and nanoseconds since Epoch. Days are
// exactly 86400 seconds; there are no time zones or leap seconds.
type Time struct {
	Secs  uint32
	Nsecs uint32
}

// Go converts t to a time.Time in UTC.
func (t Time) Go() time.Time {
	return Epoch.Add(time.Duration(t.Secs)*time.Second + time.Duration(t.Nsecs))
}

// Ticks counts a monotonic timer that starts at zero on boot.
type Ticks uint64
