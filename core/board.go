package core

// Board is the set of collaborators the control loop consumes. Every field is required.
type Board struct {
	Potentiometer Potentiometer
	Light         LightSensor
	Temperature   TempSensor
	Joystick      Joystick
	Motor         Motor
	LEDs          LedDriver
	Display       DisplayDriver
	Clock         Clock
	Sleeper       Sleeper
}

// InitError names the peripheral behind an InitializationFault.
type InitError struct {
	Peripheral string
	Err        error
}

func (e *InitError) Error() string {
	if e.Err != nil {
		return e.Peripheral + ": " + ErrInitialization.Error() + ": " + e.Err.Error()
	}
	return e.Peripheral + ": " + ErrInitialization.Error()
}

// Unwrap lets errors.Is match both ErrInitialization and the cause.
func (e *InitError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInitialization, e.Err}
	}
	return []error{ErrInitialization}
}

// Validate reports the first missing collaborator as an InitError.
func (b *Board) Validate() error {
	switch {
	case b.Potentiometer == nil:
		return &InitError{Peripheral: "potentiometer"}
	case b.Light == nil:
		return &InitError{Peripheral: "light sensor"}
	case b.Temperature == nil:
		return &InitError{Peripheral: "temperature sensor"}
	case b.Joystick == nil:
		return &InitError{Peripheral: "joystick"}
	case b.Motor == nil:
		return &InitError{Peripheral: "motor"}
	case b.LEDs == nil:
		return &InitError{Peripheral: "leds"}
	case b.Display == nil:
		return &InitError{Peripheral: "display"}
	case b.Clock == nil:
		return &InitError{Peripheral: "clock"}
	case b.Sleeper == nil:
		return &InitError{Peripheral: "sleeper"}
	}
	return nil
}

// ADCPotentiometer samples the setpoint potentiometer through an ADCDriver.
type ADCPotentiometer struct {
	ADC     ADCDriver
	Channel ADCChannelID

	// Retries bounds the number of ConversionDone polls.
	Retries int
}

// NewADCPotentiometer configures ch and returns the potentiometer reader.
func NewADCPotentiometer(adc ADCDriver, ch ADCChannelID, retries int) (*ADCPotentiometer, error) {
	if err := adc.ConfigureChannel(ch); err != nil {
		return nil, &InitError{Peripheral: "adc", Err: err}
	}
	if retries <= 0 {
		retries = DefaultConfig().ADCRetries
	}
	return &ADCPotentiometer{ADC: adc, Channel: ch, Retries: retries}, nil
}

// SamplePotentiometer starts a conversion and busy-polls for its completion.
// When the retry budget runs out it gives up with ErrSensorTimeout instead of stalling the loop.
func (p *ADCPotentiometer) SamplePotentiometer() (uint16, error) {
	if err := p.ADC.StartConversion(p.Channel); err != nil {
		return 0, err
	}
	for i := 0; i < p.Retries; i++ {
		if p.ADC.ConversionDone(p.Channel) {
			v, err := p.ADC.ReadResult(p.Channel)
			return uint16(v), err
		}
	}
	return 0, ErrSensorTimeout
}

// PWMMotor drives the fan from one hardware PWM output.
type PWMMotor struct {
	PWM    PWMDriver
	Pin    PWMPin
	period uint32
}

// NewPWMMotor configures pin for the requested period and starts it at zero duty.
func NewPWMMotor(pwm PWMDriver, pin PWMPin, periodTicks uint32) (*PWMMotor, error) {
	actual, err := pwm.ConfigureHardwarePWM(pin, periodTicks)
	if err != nil {
		return nil, &InitError{Peripheral: "pwm", Err: err}
	}
	m := &PWMMotor{PWM: pwm, Pin: pin, period: actual}
	if err := m.SetMotorDuty(0); err != nil {
		return nil, &InitError{Peripheral: "pwm", Err: err}
	}
	return m, nil
}

// PeriodTicks implements Motor.
func (m *PWMMotor) PeriodTicks() uint32 {
	return m.period
}

// SetMotorDuty implements Motor.
func (m *PWMMotor) SetMotorDuty(ticks uint32) error {
	if ticks > m.period {
		return ErrOutOfRange
	}
	return m.PWM.SetCompare(m.Pin, ticks)
}

// JoystickPins lists the input pin of each direction.
type JoystickPins struct {
	Center, Up, Down, Left, Right GPIOPin
}

// GPIOJoystick reads a five-way joystick wired as switches to ground.
type GPIOJoystick struct {
	GPIO GPIODriver
	Pins JoystickPins
}

// NewGPIOJoystick configures every direction pin as a pulled-up input.
func NewGPIOJoystick(gpio GPIODriver, pins JoystickPins) (*GPIOJoystick, error) {
	for _, pin := range []GPIOPin{pins.Center, pins.Up, pins.Down, pins.Left, pins.Right} {
		if err := gpio.ConfigureInputPullUp(pin); err != nil {
			return nil, &InitError{Peripheral: "joystick", Err: err}
		}
	}
	return &GPIOJoystick{GPIO: gpio, Pins: pins}, nil
}

// ReadJoystick implements Joystick. A pressed switch reads low.
func (j *GPIOJoystick) ReadJoystick() (JoystickMask, error) {
	var m JoystickMask
	if !j.GPIO.ReadPin(j.Pins.Center) {
		m |= JoyCenter
	}
	if !j.GPIO.ReadPin(j.Pins.Up) {
		m |= JoyUp
	}
	if !j.GPIO.ReadPin(j.Pins.Down) {
		m |= JoyDown
	}
	if !j.GPIO.ReadPin(j.Pins.Left) {
		m |= JoyLeft
	}
	if !j.GPIO.ReadPin(j.Pins.Right) {
		m |= JoyRight
	}
	return m, nil
}

// GPIOLeds drives three discrete LEDs, one output pin each, active high.
type GPIOLeds struct {
	GPIO             GPIODriver
	Red, Green, Blue GPIOPin
}

// NewGPIOLeds configures the three outputs and switches the LEDs off.
func NewGPIOLeds(gpio GPIODriver, red, green, blue GPIOPin) (*GPIOLeds, error) {
	for _, pin := range []GPIOPin{red, green, blue} {
		if err := gpio.ConfigureOutput(pin); err != nil {
			return nil, &InitError{Peripheral: "leds", Err: err}
		}
	}
	l := &GPIOLeds{GPIO: gpio, Red: red, Green: green, Blue: blue}
	if err := l.SetLeds(0); err != nil {
		return nil, &InitError{Peripheral: "leds", Err: err}
	}
	return l, nil
}

// SetLeds implements LedDriver.
func (l *GPIOLeds) SetLeds(mask LedMask) error {
	if err := l.GPIO.SetPin(l.Red, mask&LedRed != 0); err != nil {
		return err
	}
	if err := l.GPIO.SetPin(l.Green, mask&LedGreen != 0); err != nil {
		return err
	}
	return l.GPIO.SetPin(l.Blue, mask&LedBlue != 0)
}
