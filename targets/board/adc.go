//go:build rp2040 || rp2350

package board

import (
	"device/rp"
	"errors"
	"machine"

	"aircon/core"
)

// RPADCDriver implements core.ADCDriver on the RP2xxx SAR ADC. Conversions are
// started and polled through the CS register so the core owns the wait.
type RPADCDriver struct {
	configured [4]bool
}

// NewRPADCDriver enables the ADC block.
func NewRPADCDriver() *RPADCDriver {
	machine.InitADC()
	return &RPADCDriver{}
}

// ConfigureChannel implements core.ADCDriver for the external inputs ADC0-ADC3.
func (d *RPADCDriver) ConfigureChannel(ch core.ADCChannelID) error {
	if int(ch) >= len(d.configured) {
		return errors.New("unsupported ADC channel")
	}
	if d.configured[ch] {
		return nil
	}

	var pin machine.Pin
	switch ch {
	case 0:
		pin = machine.ADC0
	case 1:
		pin = machine.ADC1
	case 2:
		pin = machine.ADC2
	case 3:
		pin = machine.ADC3
	}
	adc := machine.ADC{Pin: pin}
	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		return err
	}
	d.configured[ch] = true
	return nil
}

// StartConversion selects ch and triggers a single conversion.
func (d *RPADCDriver) StartConversion(ch core.ADCChannelID) error {
	if int(ch) >= len(d.configured) || !d.configured[ch] {
		return errors.New("ADC channel not configured")
	}
	rp.ADC.CS.ReplaceBits(uint32(ch)<<rp.ADC_CS_AINSEL_Pos, rp.ADC_CS_AINSEL_Msk, 0)
	rp.ADC.CS.SetBits(rp.ADC_CS_START_ONCE)
	return nil
}

// ConversionDone reports the READY flag.
func (d *RPADCDriver) ConversionDone(ch core.ADCChannelID) bool {
	return rp.ADC.CS.HasBits(rp.ADC_CS_READY)
}

// ReadResult returns the right-aligned 12-bit result.
func (d *RPADCDriver) ReadResult(ch core.ADCChannelID) (core.ADCValue, error) {
	if rp.ADC.CS.HasBits(rp.ADC_CS_ERR) {
		return 0, core.ErrSensorFault
	}
	return core.ADCValue(rp.ADC.RESULT.Get() & 0x0FFF), nil
}
