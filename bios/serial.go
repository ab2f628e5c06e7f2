package bios

import (
	"neobios/api"
	"neobios/hal"
)

const serialDevice = 0

// txPatience is how many status polls serial_write waits on a full
// transmitter before returning a short count.
const txPatience = 1 << 16

var ser0 = api.SerialDeviceInfo{Name: "ser0", DeviceType: api.SerialTTLUART}

func (f *Firmware) serialGetInfo(device uint8) (api.SerialDeviceInfo, bool) {
	if device != serialDevice {
		return api.SerialDeviceInfo{}, false
	}
	return ser0, true
}

// serialConfigure re-enables the UART at the requested rate. Data bits,
// stop bits, parity and handshaking are ignored.
func (f *Firmware) serialConfigure(device uint8, cfg api.SerialConfig) error {
	if device != serialDevice {
		return api.ErrInvalidDevice
	}
	if cfg.DataRateBps == 0 {
		return api.UnsupportedConfiguration(1)
	}
	f.withHardware(func(h *Hardware) {
		h.UART0.Enable(cfg.DataRateBps, hal.PeripheralClock)
	})
	return nil
}

func (f *Firmware) serialWrite(device uint8, data []byte, _ *api.Timeout) (int, error) {
	if device != serialDevice {
		return 0, api.ErrInvalidDevice
	}
	var n int
	f.withHardware(func(h *Hardware) {
		n = h.UART0.Send(data, txPatience)
	})
	return n, nil
}

// serialRead copies whatever the receiver already holds, up to len(buf). It
// never waits.
func (f *Firmware) serialRead(device uint8, buf []byte, _ *api.Timeout) (int, error) {
	if device != serialDevice {
		return 0, api.ErrInvalidDevice
	}
	if buf == nil {
		return 0, api.UnsupportedConfiguration(0)
	}
	var n int
	f.withHardware(func(h *Hardware) {
		for n < len(buf) {
			b, ok := h.UART0.Receive()
			if !ok {
				break
			}
			buf[n] = b
			n++
		}
	})
	return n, nil
}
