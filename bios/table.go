package bios

import "neobios/api"

// Table returns the operation table. It is built on first use and the same
// table is returned for the life of f.
func (f *Firmware) Table() *api.Table {
	f.tableOnce.Do(func() {
		f.table = &api.Table{
			APIVersionGet:  func() api.Version { return api.APIVersion },
			BIOSVersionGet: Version,

			SerialGetInfo:   f.serialGetInfo,
			SerialConfigure: f.serialConfigure,
			SerialWrite:     f.serialWrite,
			SerialRead:      f.serialRead,

			TimeClockGet:       f.timeClockGet,
			TimeClockSet:       f.timeClockSet,
			TimeTicksGet:       f.timeTicksGet,
			TimeTicksPerSecond: f.timeTicksPerSecond,

			ConfigurationGet: f.configurationGet,
			ConfigurationSet: f.configurationSet,

			VideoIsValidMode:     f.videoIsValidMode,
			VideoModeNeedsVRAM:   f.videoModeNeedsVRAM,
			VideoSetMode:         f.videoSetMode,
			VideoGetMode:         f.videoGetMode,
			VideoGetFramebuffer:  f.videoGetFramebuffer,
			VideoSetFramebuffer:  f.videoSetFramebuffer,
			VideoWaitForLine:     f.videoWaitForLine,
			VideoGetPalette:      f.videoGetPalette,
			VideoSetPalette:      f.videoSetPalette,
			VideoSetWholePalette: f.videoSetWholePalette,

			MemoryGetRegion: f.memoryGetRegion,

			HIDGetEvent: hidGetEvent,
			HIDSetLEDs:  hidSetLEDs,

			I2CBusGetInfo: i2cBusGetInfo,
			I2CWriteRead:  i2cWriteRead,

			AudioMixerChannelGetInfo:  audioMixerChannelGetInfo,
			AudioMixerChannelSetLevel: audioMixerChannelSetLevel,
			AudioOutputSetConfig:      audioSetConfig,
			AudioOutputGetConfig:      audioGetConfig,
			AudioOutputData:           audioData,
			AudioOutputGetSpace:       audioCount,
			AudioInputSetConfig:       audioSetConfig,
			AudioInputGetConfig:       audioGetConfig,
			AudioInputData:            audioData,
			AudioInputGetCount:        audioCount,

			BusSelect:          busSelect,
			BusGetInfo:         busGetInfo,
			BusWriteRead:       busWriteRead,
			BusExchange:        busExchange,
			BusInterruptStatus: busInterruptStatus,

			BlockDevGetInfo: blockDevGetInfo,
			BlockDevEject:   blockDevEject,
			BlockWrite:      blockTransfer,
			BlockRead:       blockTransfer,
			BlockVerify:     blockTransfer,

			PowerIdle: f.powerIdle,
		}
	})
	return f.table
}
