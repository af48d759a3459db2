package core

// PWMPin is the GPIO number of a PWM-capable output.
type PWMPin uint32

// PWMDriver gives the core one compare register per configured output.
type PWMDriver interface {
	// ConfigureHardwarePWM configures a pin for hardware PWM output.
	// periodTicks: counter value of one full PWM period.
	// Returns the period actually in use (hardware may round it).
	ConfigureHardwarePWM(pin PWMPin, periodTicks uint32) (uint32, error)

	// SetCompare writes the compare value for pin; 0 is fully off and the
	// period value fully on. Takes effect at the next period boundary.
	SetCompare(pin PWMPin, ticks uint32) error
}
