package bios

import "neobios/api"

// memoryGetRegion reports the OS arena as region 0. The board has no other
// region.
func (f *Firmware) memoryGetRegion(region uint8) (api.MemoryRegion, bool) {
	if region != 0 {
		return api.MemoryRegion{}, false
	}
	r := f.board.AppRAM()
	return api.MemoryRegion{Start: r.Start, Length: r.Length, Kind: api.MemoryRAM}, true
}

func (f *Firmware) powerIdle() { f.board.Idle() }
