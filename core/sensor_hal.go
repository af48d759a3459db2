package core

// LightSensor returns ambient light in device-defined raw units.
type LightSensor interface {
	ReadLight() (uint32, error)
}

// TempSensor returns temperature in tenths of a degree Celsius.
type TempSensor interface {
	ReadTemperature() (int32, error)
}

// Potentiometer returns the operator setpoint, 0..ADCMax.
type Potentiometer interface {
	SamplePotentiometer() (uint16, error)
}

// Joystick returns the directions held at the moment of the call; no debouncing.
type Joystick interface {
	ReadJoystick() (JoystickMask, error)
}

// Motor drives the fan through the PWM compare register.
type Motor interface {
	// PeriodTicks is the PWM period the duty cycle is scaled onto.
	PeriodTicks() uint32

	// SetMotorDuty writes the compare value, effective at the next period boundary.
	SetMotorDuty(ticks uint32) error
}

// LedDriver sets all three indicator LEDs at once.
type LedDriver interface {
	SetLeds(mask LedMask) error
}
