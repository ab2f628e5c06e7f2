package api

// HIDEventKind is what happened on an input device.
type HIDEventKind uint8

const (
	HIDKeyPress HIDEventKind = iota
	HIDKeyRelease
	HIDMouseInput
	HIDHeartbeat
)

// HIDEvent is one input event. Key codes are board-independent labels, not
// scan codes.
type HIDEvent struct {
	Kind HIDEventKind
	Key  uint8
}

// KeyboardLEDs is a bit set of keyboard indicator lights.
type KeyboardLEDs uint8

const (
	LEDNumLock KeyboardLEDs = 1 << iota
	LEDCapsLock
	LEDScrollLock
)
