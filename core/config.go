package core

// Config holds the compile-time tunables of the control loop.
type Config struct {
	// PWMPeriodTicks is the PWM period the targets configure (timer ticks).
	PWMPeriodTicks uint32

	// LightThreshold: readings strictly below it select night mode.
	LightThreshold uint32

	// LoopPeriodMillis is the pacing delay at the end of every cycle.
	LoopPeriodMillis uint32

	// ADCRetries bounds the conversion-ready polls of one potentiometer sample.
	ADCRetries int

	// LightPolls bounds the data-ready polls of one light sample. Each poll is
	// an I2C register read rather than a local register access, so the budget
	// is smaller than ADCRetries and still spans a full colour integration.
	LightPolls int

	// ShowLight adds a live light-reading row under the temperature.
	ShowLight bool
}

// DefaultConfig returns the configuration the firmware ships with.
func DefaultConfig() Config {
	return Config{
		PWMPeriodTicks:   24999, // 25 MHz / 1 kHz, minus one
		LightThreshold:   DefaultLightThreshold,
		LoopPeriodMillis: 200,
		ADCRetries:       1000,
		LightPolls:       200,
	}
}

// applyDefaults fills in zero-valued fields
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.PWMPeriodTicks == 0 {
		c.PWMPeriodTicks = def.PWMPeriodTicks
	}
	if c.LightThreshold == 0 {
		c.LightThreshold = def.LightThreshold
	}
	if c.LoopPeriodMillis == 0 {
		c.LoopPeriodMillis = def.LoopPeriodMillis
	}
	if c.ADCRetries <= 0 {
		c.ADCRetries = def.ADCRetries
	}
	if c.LightPolls <= 0 {
		c.LightPolls = def.LightPolls
	}
}

// WithDefaults returns c with every zero-valued field set to its default.
func (c Config) WithDefaults() Config {
	c.applyDefaults()
	return c
}
