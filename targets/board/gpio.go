//go:build rp2040 || rp2350

package board

import (
	"errors"
	"machine"

	"aircon/core"
)

// RPGPIODriver implements core.GPIODriver. GPIO numbers map directly onto machine.Pin.
type RPGPIODriver struct {
	outputs map[core.GPIOPin]machine.Pin
	inputs  map[core.GPIOPin]machine.Pin
}

// NewRPGPIODriver creates a new GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		outputs: make(map[core.GPIOPin]machine.Pin),
		inputs:  make(map[core.GPIOPin]machine.Pin),
	}
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if _, ok := d.inputs[pin]; ok {
		return errors.New("pin already used as input")
	}
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.outputs[pin] = p
	return nil
}

// ConfigureInputPullUp configures a pin as an input with the pull-up enabled
func (d *RPGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	if _, ok := d.outputs[pin]; ok {
		return errors.New("pin already used as output")
	}
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	d.inputs[pin] = p
	return nil
}

// SetPin drives a configured output
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	p, ok := d.outputs[pin]
	if !ok {
		return errors.New("pin not configured as output")
	}
	p.Set(value)
	return nil
}

// ReadPin samples a configured input. Unconfigured pins read high, i.e. released.
func (d *RPGPIODriver) ReadPin(pin core.GPIOPin) bool {
	p, ok := d.inputs[pin]
	if !ok {
		return true
	}
	return p.Get()
}
