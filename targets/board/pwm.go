//go:build rp2040 || rp2350

package board

import (
	"errors"
	"machine"

	"aircon/core"
)

// PWMTickHz is the rate PWM periods are expressed in: 25 MHz, so a
// 24999-tick period is 1 kHz.
const PWMTickHz = 25_000_000

// pwmPeripheral abstracts over TinyGo's unexported *pwmGroup type
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

type pwmOutput struct {
	slice   pwmPeripheral
	channel uint8
}

// RPPWMDriver implements core.PWMDriver on the RP2xxx PWM slices.
// GPIO N belongs to slice (N>>1)&7, channel A for even pins and B for odd.
type RPPWMDriver struct {
	outputs map[core.PWMPin]pwmOutput
}

// NewRPPWMDriver creates a new PWM driver
func NewRPPWMDriver() *RPPWMDriver {
	return &RPPWMDriver{outputs: make(map[core.PWMPin]pwmOutput)}
}

// ConfigureHardwarePWM implements core.PWMDriver. The returned period is the
// slice's TOP value, which is what compare values are measured against.
func (d *RPPWMDriver) ConfigureHardwarePWM(pin core.PWMPin, periodTicks uint32) (uint32, error) {
	if periodTicks == 0 {
		return 0, core.ErrOutOfRange
	}
	slice := slicePeripheral(uint8((uint32(pin) >> 1) & 0x7))

	// one tick is 40 ns at PWMTickHz
	periodNs := (uint64(periodTicks) + 1) * 1_000_000_000 / PWMTickHz
	if err := slice.Configure(machine.PWMConfig{Period: periodNs}); err != nil {
		return 0, err
	}
	ch, err := slice.Channel(machine.Pin(pin))
	if err != nil {
		return 0, err
	}

	d.outputs[pin] = pwmOutput{slice: slice, channel: ch}
	return slice.Top(), nil
}

// SetCompare implements core.PWMDriver.
func (d *RPPWMDriver) SetCompare(pin core.PWMPin, ticks uint32) error {
	out, ok := d.outputs[pin]
	if !ok {
		return errors.New("PWM pin not configured")
	}
	if ticks > out.slice.Top() {
		return core.ErrOutOfRange
	}
	out.slice.Set(out.channel, ticks)
	return nil
}

func slicePeripheral(slice uint8) pwmPeripheral {
	switch slice {
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return machine.PWM0
	}
}
