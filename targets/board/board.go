//go:build rp2040 || rp2350

// Package board brings up the peripherals shared by every RP2xxx target.
package board

import (
	"machine"

	"aircon/core"
)

// Pin assignment
const (
	PotChannel core.ADCChannelID = 0 // GP26
	MotorPin   core.PWMPin       = 16

	JoyCenter core.GPIOPin = 2
	JoyUp     core.GPIOPin = 3
	JoyDown   core.GPIOPin = 4
	JoyLeft   core.GPIOPin = 5
	JoyRight  core.GPIOPin = 6

	i2cSDA = machine.GPIO8
	i2cSCL = machine.GPIO9
)

// Hardware is the brought-up board. Board lacks only the LEDs, which differ per target.
type Hardware struct {
	Board     core.Board
	GPIO      *RPGPIODriver
	Telemetry *core.FrameWriter
}

// Setup performs bring-up in dependency order: USB for diagnostics, the tick,
// then every peripheral. Any failure is returned as an InitError, except a
// missing tick which halts inside core.TimerInit.
func Setup(cfg core.Config) (*Hardware, error) {
	cfg = cfg.WithDefaults()

	// Boot with the watchdog disarmed
	if err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0}); err != nil {
		return nil, &core.InitError{Peripheral: "watchdog", Err: err}
	}

	usb, err := InitUSB()
	if err != nil {
		return nil, &core.InitError{Peripheral: "usb", Err: err}
	}
	core.SetDebugWriter(usb.Println)
	telemetry := core.NewFrameWriter(usb)
	core.SetHaltHandler(func(reason string) {
		telemetry.PublishFault(reason)
		watchdogReset()
	})

	core.TimerInit(startSysTick)

	pot, err := core.NewADCPotentiometer(NewRPADCDriver(), PotChannel, cfg.ADCRetries)
	if err != nil {
		return nil, err
	}
	motor, err := core.NewPWMMotor(NewRPPWMDriver(), MotorPin, cfg.PWMPeriodTicks)
	if err != nil {
		return nil, err
	}

	gpio := NewRPGPIODriver()
	joy, err := core.NewGPIOJoystick(gpio, core.JoystickPins{
		Center: JoyCenter, Up: JoyUp, Down: JoyDown, Left: JoyLeft, Right: JoyRight,
	})
	if err != nil {
		return nil, err
	}

	if err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       i2cSDA,
		SCL:       i2cSCL,
		Frequency: 400 * machine.KHz,
	}); err != nil {
		return nil, &core.InitError{Peripheral: "i2c0", Err: err}
	}
	therm, err := NewThermometer(machine.I2C0)
	if err != nil {
		return nil, err
	}
	light, err := NewLightMeter(machine.I2C0, cfg.LightPolls)
	if err != nil {
		return nil, err
	}

	screen, err := NewOLED()
	if err != nil {
		return nil, err
	}

	clock := core.TickClock{}
	return &Hardware{
		Board: core.Board{
			Potentiometer: pot,
			Light:         light,
			Temperature:   therm,
			Joystick:      joy,
			Motor:         motor,
			Display:       screen,
			Clock:         clock,
			Sleeper:       &core.TickDelay{Clock: clock, Idle: waitForInterrupt},
		},
		GPIO:      gpio,
		Telemetry: telemetry,
	}, nil
}
