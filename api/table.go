// Package api defines the binary interface between the firmware and the
// operating system: the Table of operation slots and every type that
// crosses it.
//
// The slot order is frozen. New slots are only ever appended, and a slot's
// signature never changes once released; APIVersion tells a consumer which
// layout it was given.
package api

// Table is the complete set of firmware operations handed to the OS. It is
// filled once at boot and never changed afterwards.
//
// Slots that return error report an Error. Slots returning (T, bool) report
// absence with false. Byte transfers may be partial; callers loop when they
// need every byte moved.
type Table struct {
	APIVersionGet  func() Version `slot:"api_version_get"`
	BIOSVersionGet func() string  `slot:"bios_version_get"`

	SerialGetInfo   func(device uint8) (SerialDeviceInfo, bool)                    `slot:"serial_get_info"`
	SerialConfigure func(device uint8, cfg SerialConfig) error                     `slot:"serial_configure"`
	SerialWrite     func(device uint8, data []byte, timeout *Timeout) (int, error) `slot:"serial_write"`
	SerialRead      func(device uint8, buf []byte, timeout *Timeout) (int, error)  `slot:"serial_read"`

	TimeClockGet       func() Time  `slot:"time_clock_get"`
	TimeClockSet       func(t Time) `slot:"time_clock_set"`
	TimeTicksGet       func() Ticks `slot:"time_ticks_get"`
	TimeTicksPerSecond func() Ticks `slot:"time_ticks_per_second"`

	ConfigurationGet func(buf []byte) (int, error) `slot:"configuration_get"`
	ConfigurationSet func(data []byte) error       `slot:"configuration_set"`

	VideoIsValidMode     func(mode VideoMode) bool           `slot:"video_is_valid_mode"`
	VideoModeNeedsVRAM   func(mode VideoMode) bool           `slot:"video_mode_needs_vram"`
	VideoSetMode         func(mode VideoMode) error          `slot:"video_set_mode"`
	VideoGetMode         func() VideoMode                    `slot:"video_get_mode"`
	VideoGetFramebuffer  func() []byte                       `slot:"video_get_framebuffer"`
	VideoSetFramebuffer  func(buf []byte) error              `slot:"video_set_framebuffer"`
	VideoWaitForLine     func(line uint16)                   `slot:"video_wait_for_line"`
	VideoGetPalette      func(index uint8) (RGBColour, bool) `slot:"video_get_palette"`
	VideoSetPalette      func(index uint8, rgb RGBColour)    `slot:"video_set_palette"`
	VideoSetWholePalette func(palette []RGBColour)           `slot:"video_set_whole_palette"`

	MemoryGetRegion func(region uint8) (MemoryRegion, bool) `slot:"memory_get_region"`

	HIDGetEvent func() (HIDEvent, bool, error) `slot:"hid_get_event"`
	HIDSetLEDs  func(leds KeyboardLEDs) error  `slot:"hid_set_leds"`

	I2CBusGetInfo func(bus uint8) (I2CBusInfo, bool)              `slot:"i2c_bus_get_info"`
	I2CWriteRead  func(bus, addr uint8, tx, tx2, rx []byte) error `slot:"i2c_write_read"`

	AudioMixerChannelGetInfo  func(id uint8) (MixerChannelInfo, bool) `slot:"audio_mixer_channel_get_info"`
	AudioMixerChannelSetLevel func(id, level uint8) error             `slot:"audio_mixer_channel_set_level"`
	AudioOutputSetConfig      func(cfg AudioConfig) error             `slot:"audio_output_set_config"`
	AudioOutputGetConfig      func() (AudioConfig, error)             `slot:"audio_output_get_config"`
	AudioOutputData           func(samples []byte) (int, error)       `slot:"audio_output_data"`
	AudioOutputGetSpace       func() (int, error)                     `slot:"audio_output_get_space"`
	AudioInputSetConfig       func(cfg AudioConfig) error             `slot:"audio_input_set_config"`
	AudioInputGetConfig       func() (AudioConfig, error)             `slot:"audio_input_get_config"`
	AudioInputData            func(buf []byte) (int, error)           `slot:"audio_input_data"`
	AudioInputGetCount        func() (int, error)                     `slot:"audio_input_get_count"`

	// BusSelect asserts the chip select of peripheral id, or releases every
	// select when id is nil.
	BusSelect          func(id *uint8)                       `slot:"bus_select"`
	BusGetInfo         func(id uint8) (PeripheralInfo, bool) `slot:"bus_get_info"`
	BusWriteRead       func(tx, tx2, rx []byte) error        `slot:"bus_write_read"`
	BusExchange        func(buf []byte) error                `slot:"bus_exchange"`
	BusInterruptStatus func() uint32                         `slot:"bus_interrupt_status"`

	BlockDevGetInfo func(device uint8) (BlockDeviceInfo, bool)                     `slot:"block_dev_get_info"`
	BlockDevEject   func(device uint8) error                                       `slot:"block_dev_eject"`
	BlockWrite      func(device uint8, block BlockIdx, n uint8, data []byte) error `slot:"block_write"`
	BlockRead       func(device uint8, block BlockIdx, n uint8, buf []byte) error  `slot:"block_read"`
	BlockVerify     func(device uint8, block BlockIdx, n uint8, data []byte) error `slot:"block_verify"`

	PowerIdle func() `slot:"power_idle"`
}

// SlotNames lists the slots of Table in ABI order.
var SlotNames = [...]string{
	"api_version_get",
	"bios_version_get",
	"serial_get_info",
	"serial_configure",
	"serial_write",
	"serial_read",
	"time_clock_get",
	"time_clock_set",
	"time_ticks_get",
	"time_ticks_per_second",
	"configuration_get",
	"configuration_set",
	"video_is_valid_mode",
	"video_mode_needs_vram",
	"video_set_mode",
	"video_get_mode",
	"video_get_framebuffer",
	"video_set_framebuffer",
	"video_wait_for_line",
	"video_get_palette",
	"video_set_palette",
	"video_set_whole_palette",
	"memory_get_region",
	"hid_get_event",
	"hid_set_leds",
	"i2c_bus_get_info",
	"i2c_write_read",
	"audio_mixer_channel_get_info",
	"audio_mixer_channel_set_level",
	"audio_output_set_config",
	"audio_output_get_config",
	"audio_output_data",
	"audio_output_get_space",
	"audio_input_set_config",
	"audio_input_get_config",
	"audio_input_data",
	"audio_input_get_count",
	"bus_select",
	"bus_get_info",
	"bus_write_read",
	"bus_exchange",
	"bus_interrupt_status",
	"block_dev_get_info",
	"block_dev_eject",
	"block_write",
	"block_read",
	"block_verify",
	"power_idle",
}
