// Package cfgblock encodes the OS configuration block.
//
// The block is a compact binary record in postcard layout: booleans are one
// byte (0 or 1) and integers are unsigned LEB128 varints, fields in
// declaration order.
package cfgblock

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Config is the console setup the OS reads at start-up.
type Config struct {
	SerialConsole bool
	SerialBaud    uint32
	VGAConsole    bool
}

// MaxSize is the longest encoding of a Config.
const MaxSize = 1 + binary.MaxVarintLen32 + 1

var (
	ErrTruncated = errors.New("cfgblock: truncated")
	ErrBadBool   = errors.New("cfgblock: bad bool")
	ErrOverflow  = errors.New("cfgblock: integer overflow")
)

// SetSerialConsoleOn enables the serial console at baud.
func (c *Config) SetSerialConsoleOn(baud uint32) {
	c.SerialConsole = true
	c.SerialBaud = baud
}

// SetVGAConsole enables or disables the video console.
func (c *Config) SetVGAConsole(on bool) {
	c.VGAConsole = on
}

// AppendBinary appends the encoding of c to dst.
func (c Config) AppendBinary(dst []byte) []byte {
	dst = appendBool(dst, c.SerialConsole)
	dst = binary.AppendUvarint(dst, uint64(c.SerialBaud))
	dst = appendBool(dst, c.VGAConsole)
	return dst
}

// MarshalTo encodes c into buf and returns the encoded length. It fails
// with io.ErrShortBuffer if buf cannot hold the whole record.
func (c Config) MarshalTo(buf []byte) (int, error) {
	var scratch [MaxSize]byte
	enc := c.AppendBinary(scratch[:0])
	if len(buf) < len(enc) {
		return 0, io.ErrShortBuffer
	}
	return copy(buf, enc), nil
}

// Unmarshal decodes a record. Trailing bytes are ignored.
func Unmarshal(data []byte) (Config, error) {
	var c Config
	var err error
	d := data

	if c.SerialConsole, d, err = readBool(d); err != nil {
		return Config{}, fmt.Errorf("serial console: %w", err)
	}
	v, n := binary.Uvarint(d)
	switch {
	case n == 0:
		return Config{}, fmt.Errorf("serial baud: %w", ErrTruncated)
	case n < 0 || v > math.MaxUint32:
		return Config{}, fmt.Errorf("serial baud: %w", ErrOverflow)
	}
	c.SerialBaud, d = uint32(v), d[n:]
	if c.VGAConsole, _, err = readBool(d); err != nil {
		return Config{}, fmt.Errorf("vga console: %w", err)
	}
	return c, nil
}

func appendBool(dst []byte, b bool) []byte {
	if b {
		return append(dst, 1)
	}
	return append(dst, 0)
}

func readBool(d []byte) (bool, []byte, error) {
	if len(d) == 0 {
		return false, d, ErrTruncated
	}
	switch d[0] {
	case 0:
		return false, d[1:], nil
	case 1:
		return true, d[1:], nil
	default:
		return false, d, ErrBadBool
	}
}
