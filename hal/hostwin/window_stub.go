//go:build !tinygo && !cgo

package hostwin

import (
	"errors"

	"neobios/hal"
)

// Config controls the window.
type Config struct {
	Scale int
}

func Run(_ *hal.HostBoard, _ func(hal.Board), _ Config) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
