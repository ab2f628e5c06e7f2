package api

// I2CBusInfo describes one I2C bus.
type I2CBusInfo struct {
	Name string
}

// AudioDirection says whether a mixer channel plays or records.
type AudioDirection uint8

const (
	AudioInput AudioDirection = iota
	AudioOutput
	AudioLoopback
)

// MixerChannelInfo describes one audio mixer channel.
type MixerChannelInfo struct {
	Name         string
	Direction    AudioDirection
	MaxLevel     uint8
	CurrentLevel uint8
}

type SampleFormat uint8

const (
	SampleEightBitMono SampleFormat = iota
	SampleEightBitStereo
	SampleSixteenBitMono
	SampleSixteenBitStereo
)

// AudioConfig is a sample stream format.
type AudioConfig struct {
	SampleFormat SampleFormat
	SampleRateHz uint32
}

// PeripheralKind is the class of a device on the expansion bus.
type PeripheralKind uint8

const (
	PeripheralSlot PeripheralKind = iota
	PeripheralSDCard
	PeripheralReserved
)

// PeripheralInfo describes one expansion bus peripheral.
type PeripheralInfo struct {
	Name string
	Kind PeripheralKind
}

// BlockIdx addresses a block on a block device.
type BlockIdx uint64

type BlockDeviceType uint8

const (
	BlockSecureDigitalCard BlockDeviceType = iota
	BlockHardDiskDrive
	BlockFloppyDiskDrive
	BlockCompactFlashCard
)

// BlockDeviceInfo describes one block device.
type BlockDeviceInfo struct {
	Name         string
	DeviceType   BlockDeviceType
	BlockSize    uint32
	NumBlocks    uint64
	Ejectable    bool
	Removable    bool
	MediaPresent bool
	ReadOnly     bool
}
