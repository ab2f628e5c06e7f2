package bios

import (
	"neobios/api"
	"neobios/hal"
)

const (
	nsPerSec  = 1_000_000_000
	nsPerTick = nsPerSec / hal.TicksPerSecond
)

// wallClock is calendar time kept as an offset from the tick counter. The
// board has no RTC, so it starts at the epoch.
type wallClock struct {
	base api.Time
	at   uint64
}

func (c *wallClock) set(t api.Time, ticks uint64) {
	c.base = t
	c.at = ticks
}

func (c *wallClock) now(ticks uint64) api.Time {
	ns := uint64(c.base.Secs)*nsPerSec + uint64(c.base.Nsecs) + (ticks-c.at)*nsPerTick
	return api.Time{Secs: uint32(ns / nsPerSec), Nsecs: uint32(ns % nsPerSec)}
}

func (f *Firmware) timeClockGet() api.Time {
	var t api.Time
	f.withHardware(func(h *Hardware) {
		t = h.clock.now(f.board.Ticks())
	})
	return t
}

func (f *Firmware) timeClockSet(t api.Time) {
	f.withHardware(func(h *Hardware) {
		h.clock.set(t, f.board.Ticks())
	})
}

func (f *Firmware) timeTicksGet() api.Ticks { return api.Ticks(f.board.Ticks()) }

func (f *Firmware) timeTicksPerSecond() api.Ticks { return hal.TicksPerSecond }
