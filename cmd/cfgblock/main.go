//go:build !tinygo

// Command cfgblock encodes and decodes firmware configuration blocks.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"neobios/internal/cfgblock"
)

func main() {
	var serial, vga bool
	var baud uint64
	var decode string
	flag.BoolVar(&serial, "serial", true, "Enable the serial console.")
	flag.Uint64Var(&baud, "baud", 115200, "Serial console rate.")
	flag.BoolVar(&vga, "vga", false, "Enable the VGA console.")
	flag.StringVar(&decode, "decode", "", "Decode this hex block instead of encoding.")
	flag.Parse()

	var err error
	if decode != "" {
		err = runDecode(os.Stdout, decode)
	} else {
		var c cfgblock.Config
		if c, err = buildConfig(serial, baud, vga); err == nil {
			err = runEncode(os.Stdout, c)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func buildConfig(serial bool, baud uint64, vga bool) (cfgblock.Config, error) {
	c := cfgblock.Config{VGAConsole: vga}
	if !serial {
		return c, nil
	}
	if baud > math.MaxUint32 {
		return c, fmt.Errorf("baud %d out of range (max %d)", baud, uint64(math.MaxUint32))
	}
	c.SetSerialConsoleOn(uint32(baud))
	return c, nil
}

func runEncode(w io.Writer, c cfgblock.Config) error {
	_, err := fmt.Fprintln(w, hex.EncodeToString(c.AppendBinary(nil)))
	return err
}

func runDecode(w io.Writer, s string) error {
	s = strings.NewReplacer(" ", "", ":", "").Replace(s)
	data, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	c, err := cfgblock.Unmarshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "serial console: %v\nserial baud:    %d\nvga console:    %v\n", c.SerialConsole, c.SerialBaud, c.VGAConsole)
	return err
}
