package core

// DutyCycle maps a potentiometer reading linearly onto a PWM period:
// (reading * period) / ADCMax. The product is formed in 64 bits so any 32-bit
// period is safe. A reading above ADCMax breaks the sensor contract and
// yields ErrSensorFault with a zero duty.
func DutyCycle(reading uint16, periodTicks uint32) (uint32, error) {
	if reading > ADCMax {
		return 0, ErrSensorFault
	}
	return uint32(uint64(reading) * uint64(periodTicks) / ADCMax), nil
}
