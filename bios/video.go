package bios

import "neobios/api"

// The only display is the fixed text console in VRAM; there are no
// switchable modes.

func (f *Firmware) videoIsValidMode(api.VideoMode) bool { return false }

func (f *Firmware) videoModeNeedsVRAM(api.VideoMode) bool { return false }

func (f *Firmware) videoSetMode(api.VideoMode) error { return api.UnsupportedConfiguration(0) }

func (f *Firmware) videoGetMode() api.VideoMode { return 0 }

func (f *Firmware) videoGetFramebuffer() []byte { return f.vram[:] }

func (f *Firmware) videoSetFramebuffer([]byte) error { return api.ErrUnimplemented }

func (f *Firmware) videoWaitForLine(uint16) {}

func (f *Firmware) videoGetPalette(uint8) (api.RGBColour, bool) { return api.RGBColour{}, false }

func (f *Firmware) videoSetPalette(uint8, api.RGBColour) {}

func (f *Firmware) videoSetWholePalette([]api.RGBColour) {}
