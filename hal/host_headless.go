//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	// Hz is how often console input is moved into the UART.
	Hz int

	// Ticks stops the runner after that many input polls. Zero runs until
	// the firmware halts or ctx ends.
	Ticks uint64

	// Console, if set, feeds the UART receiver.
	Console *Console
}

var errTickLimit = errors.New("hal: tick limit")

// RunHeadless runs fw on b without opening a window.
//
// It returns nil when the tick limit is reached or the user interrupts a raw
// console, ctx.Err() when ctx ends, and ErrHalted once the firmware halts.
func RunHeadless(ctx context.Context, b *HostBoard, fw func(Board), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 100
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Console != nil && cfg.Console.Raw() {
		b.logger.setCRLF(true)
		defer b.logger.setCRLF(false)
	}

	done := b.Start(fw)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			return b.exitErr()
		}
	})
	g.Go(func() error {
		t := time.NewTicker(d)
		defer t.Stop()

		var tick uint64
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				if cfg.Console != nil {
					if err := cfg.Console.forward(b); err != nil {
						return err
					}
				}
				tick++
				if cfg.Ticks > 0 && tick >= cfg.Ticks {
					return errTickLimit
				}
			}
		}
	})

	err := g.Wait()
	switch {
	case errors.Is(err, errTickLimit), errors.Is(err, errInterrupted):
		return nil
	}
	return err
}
