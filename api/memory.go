package api

// MemoryKind says what a MemoryRegion may be used for.
type MemoryKind uint8

const (
	MemoryRAM MemoryKind = iota
	MemoryROM
	MemoryOther
)

func (k MemoryKind) String() string {
	switch k {
	case MemoryRAM:
		return "ram"
	case MemoryROM:
		return "rom"
	default:
		return "other"
	}
}

// MemoryRegion is one contiguous range of memory the OS may use. Start is a
// physical address owned by the firmware's platform; the OS borrows it.
type MemoryRegion struct {
	Start  uintptr
	Length uintptr
	Kind   MemoryKind
}
