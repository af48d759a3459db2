//go:build rp2350

package main

import (
	"machine"

	"aircon/core"
	"aircon/targets/board"
	"aircon/targets/pio"
)

const indicatorPin = machine.GPIO22

func main() {
	cfg := core.DefaultConfig()

	hw, err := board.Setup(cfg)
	if err != nil {
		core.Halt(err.Error())
	}

	indicator, err := pio.NewIndicator(indicatorPin)
	if err != nil {
		core.Halt(err.Error())
	}
	hw.Board.LEDs = indicator

	ctrl, err := core.NewController(hw.Board, cfg)
	if err != nil {
		core.Halt(err.Error())
	}
	ctrl.SetTelemetrySink(hw.Telemetry)

	core.DebugPrintln("[BOOT] rp2350 climate controller running")
	ctrl.Run()
}
