//go:build rp2040

package main

import (
	"aircon/core"
	"aircon/targets/board"
)

// Discrete indicator LEDs, active high.
const (
	ledRed   core.GPIOPin = 13
	ledGreen core.GPIOPin = 14
	ledBlue  core.GPIOPin = 15
)

func main() {
	cfg := core.DefaultConfig()

	hw, err := board.Setup(cfg)
	if err != nil {
		core.Halt(err.Error())
	}

	leds, err := core.NewGPIOLeds(hw.GPIO, ledRed, ledGreen, ledBlue)
	if err != nil {
		core.Halt(err.Error())
	}
	hw.Board.LEDs = leds

	ctrl, err := core.NewController(hw.Board, cfg)
	if err != nil {
		core.Halt(err.Error())
	}
	ctrl.SetTelemetrySink(hw.Telemetry)

	core.DebugPrintln("[BOOT] rp2040 climate controller running")
	ctrl.Run()
}
