package core

// GPIOPin is a GPIO number as printed on the board (GP0, GP1, ...).
type GPIOPin uint32

// GPIODriver gives the core digital pins for the joystick and the discrete LEDs.
type GPIODriver interface {
	// ConfigureOutput makes pin a push-pull output.
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInputPullUp makes pin an input held high when nothing pulls it down.
	ConfigureInputPullUp(pin GPIOPin) error

	// SetPin drives an output high (true) or low.
	SetPin(pin GPIOPin, high bool) error

	// ReadPin samples an input level; true is high.
	ReadPin(pin GPIOPin) bool
}
