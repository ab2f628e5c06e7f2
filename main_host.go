//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"neobios/api"
	"neobios/app"
	"neobios/hal"
	"neobios/hal/hostwin"
	"neobios/internal/demoos"
)

func main() {
	var (
		headless    hal.HeadlessConfig
		runHeadless bool
		ramKiB      int
		loopback    bool
		scale       int
	)
	flag.BoolVar(&runHeadless, "headless", false, "Run without a window; the terminal is the serial console.")
	flag.IntVar(&headless.Hz, "hz", 100, "Console input poll rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N input polls in headless mode (0 = run forever).")
	flag.IntVar(&ramKiB, "ram-kib", envInt("NEOBIOS_RAM_KIB", hal.DefaultRAMBytes>>10), "OS RAM arena in KiB (env NEOBIOS_RAM_KIB).")
	flag.BoolVar(&loopback, "loopback", false, "Loop UART transmit back into receive.")
	flag.IntVar(&scale, "window-scale", 2, "Window pixel scale.")
	flag.Parse()

	if err := run(runHeadless, headless, hal.HostConfig{RAMBytes: ramKiB << 10, Loopback: loopback}, scale); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(runHeadless bool, headless hal.HeadlessConfig, cfg hal.HostConfig, scale int) error {
	b, err := hal.NewHost(cfg)
	if err != nil {
		return err
	}

	fw := func(bd hal.Board) {
		app.Run(bd, func(t *api.Table) {
			b.ShowFramebuffer(t.VideoGetFramebuffer())
			demoos.Main(t)
		})
	}

	if !runHeadless {
		return hostwin.Run(b, fw, hostwin.Config{Scale: scale})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	console, err := hal.OpenConsole(os.Stdin)
	if err != nil {
		return err
	}
	defer console.Close()
	headless.Console = console

	return hal.RunHeadless(ctx, b, fw, headless)
}

func envInt(name string, def int) int {
	s := os.Getenv(name)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %v\n", name, s, err)
		return def
	}
	return n
}
