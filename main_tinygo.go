//go:build tinygo && baremetal

package main

import (
	"neobios/app"
	"neobios/hal"
	"neobios/internal/demoos"
)

func main() {
	app.Run(hal.New(), demoos.Main)
}
