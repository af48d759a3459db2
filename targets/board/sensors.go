//go:build rp2040 || rp2350

package board

import (
	"machine"

	"tinygo.org/x/drivers/apds9960"
	"tinygo.org/x/drivers/bme280"

	"aircon/core"
)

// Thermometer reads the BME280 temperature in tenths of a degree.
type Thermometer struct {
	dev *bme280.Device
}

// NewThermometer probes and configures a BME280 on bus.
func NewThermometer(bus *machine.I2C) (*Thermometer, error) {
	dev := bme280.New(bus)
	dev.Configure()
	if !dev.Connected() {
		return nil, &core.InitError{Peripheral: "bme280"}
	}
	return &Thermometer{dev: &dev}, nil
}

// ReadTemperature implements core.TempSensor.
func (t *Thermometer) ReadTemperature() (int32, error) {
	milli, err := t.dev.ReadTemperature()
	if err != nil {
		return 0, err
	}
	return milli / 100, nil
}

// LightMeter reads ambient light from the APDS9960 clear channel.
type LightMeter struct {
	dev   *apds9960.Device
	polls int
}

// NewLightMeter configures an APDS9960 on bus with its colour engine running.
func NewLightMeter(bus *machine.I2C, polls int) (*LightMeter, error) {
	dev := apds9960.New(bus)
	if !dev.Connected() {
		return nil, &core.InitError{Peripheral: "apds9960"}
	}
	dev.Configure(apds9960.Configuration{})
	dev.EnableColor()
	return &LightMeter{dev: &dev, polls: polls}, nil
}

// ReadLight implements core.LightSensor. The colour engine runs continuously;
// a reading that is not ready within the poll budget is a timeout.
func (l *LightMeter) ReadLight() (uint32, error) {
	for i := 0; i < l.polls; i++ {
		if l.dev.ColorAvailable() {
			_, _, _, clear := l.dev.ReadColor()
			if clear < 0 {
				return 0, core.ErrSensorFault
			}
			return uint32(clear), nil
		}
	}
	return 0, core.ErrSensorTimeout
}
