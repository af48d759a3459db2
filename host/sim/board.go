package sim

import (
	"aircon/core"
	"aircon/display"
)

// Board is a complete simulated board. Every part is exported so tests and
// the CLI can script inputs and inspect outputs.
type Board struct {
	Clock  *Clock
	Pot    *Script[uint16]
	Light  *Script[uint32]
	Temp   *Script[int32]
	Joy    *Script[core.JoystickMask]
	Motor  *Motor
	Leds   *Leds
	Frame  *display.FrameBuffer
	Screen *display.Screen

	// Sleeper paces the loop; defaults to the simulated clock.
	Sleeper core.Sleeper
}

// NewBoard returns a simulated board with neutral readings: pot at zero,
// full daylight, 20.0 °C and the joystick released.
func NewBoard(cfg core.Config) *Board {
	if cfg.PWMPeriodTicks == 0 {
		cfg.PWMPeriodTicks = core.DefaultConfig().PWMPeriodTicks
	}
	fb := display.NewFrameBuffer(core.ScreenWidth, core.ScreenHeight)
	clock := NewClock(0)
	return &Board{
		Clock:   clock,
		Pot:     NewScript[uint16](0),
		Light:   NewScript[uint32](core.ADCMax),
		Temp:    NewScript[int32](200),
		Joy:     NewScript[core.JoystickMask](0),
		Motor:   NewMotor(cfg.PWMPeriodTicks),
		Leds:    &Leds{},
		Frame:   fb,
		Screen:  display.New(fb),
		Sleeper: clock,
	}
}

// Core returns the collaborators in the form the controller consumes.
func (b *Board) Core() core.Board {
	return core.Board{
		Potentiometer: Potentiometer{b.Pot},
		Light:         LightSensor{b.Light},
		Temperature:   TempSensor{b.Temp},
		Joystick:      Joystick{b.Joy},
		Motor:         b.Motor,
		LEDs:          b.Leds,
		Display:       b.Screen,
		Clock:         b.Clock,
		Sleeper:       b.Sleeper,
	}
}
