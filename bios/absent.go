package bios

import "neobios/api"

// Devices this board does not have. Queries report nothing, data transfers
// report api.ErrUnimplemented, and status polls report idle.

func hidGetEvent() (api.HIDEvent, bool, error) { return api.HIDEvent{}, false, nil }

func hidSetLEDs(api.KeyboardLEDs) error { return api.ErrUnimplemented }

func i2cBusGetInfo(uint8) (api.I2CBusInfo, bool) { return api.I2CBusInfo{}, false }

func i2cWriteRead(_, _ uint8, _, _, _ []byte) error { return api.ErrUnimplemented }

func audioMixerChannelGetInfo(uint8) (api.MixerChannelInfo, bool) {
	return api.MixerChannelInfo{}, false
}

func audioMixerChannelSetLevel(_, _ uint8) error { return api.ErrUnimplemented }

func audioSetConfig(api.AudioConfig) error { return api.ErrUnimplemented }

func audioGetConfig() (api.AudioConfig, error) { return api.AudioConfig{}, api.ErrUnimplemented }

func audioData([]byte) (int, error) { return 0, api.ErrUnimplemented }

func audioCount() (int, error) { return 0, nil }

func busSelect(*uint8) {}

func busGetInfo(uint8) (api.PeripheralInfo, bool) { return api.PeripheralInfo{}, false }

func busWriteRead(_, _, _ []byte) error { return api.ErrUnimplemented }

func busExchange([]byte) error { return api.ErrUnimplemented }

func busInterruptStatus() uint32 { return 0 }

func blockDevGetInfo(uint8) (api.BlockDeviceInfo, bool) { return api.BlockDeviceInfo{}, false }

func blockDevEject(uint8) error { return nil }

func blockTransfer(uint8, api.BlockIdx, uint8, []byte) error { return api.ErrUnimplemented }
