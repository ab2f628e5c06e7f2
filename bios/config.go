package bios

import (
	"neobios/api"
	"neobios/internal/cfgblock"
)

// bootConfig is the configuration handed to the OS. Nothing is stored; the
// block is rebuilt on every call.
func bootConfig() cfgblock.Config {
	var c cfgblock.Config
	c.SetSerialConsoleOn(ConsoleBaud)
	c.SetVGAConsole(false)
	return c
}

func (f *Firmware) configurationGet(buf []byte) (int, error) {
	if buf == nil {
		return 0, api.UnsupportedConfiguration(0)
	}
	n, err := bootConfig().MarshalTo(buf)
	if err != nil {
		return 0, api.UnsupportedConfiguration(0)
	}
	return n, nil
}

// configurationSet accepts any block and keeps none of it.
func (f *Firmware) configurationSet([]byte) error { return nil }
