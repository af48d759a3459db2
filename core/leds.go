package core

// JoystickMask is the set of directions held in one joystick sample.
type JoystickMask uint8

const (
	JoyCenter JoystickMask = 1 << iota
	JoyUp
	JoyDown
	JoyLeft
	JoyRight
)

// Has reports whether every direction in d is held.
func (m JoystickMask) Has(d JoystickMask) bool {
	return m&d == d && d != 0
}

func (m JoystickMask) String() string {
	if m == 0 {
		return "none"
	}
	names := [...]string{"center", "up", "down", "left", "right"}
	s := ""
	for i, name := range names {
		if m&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	return s
}

// LedMask is the physical state of the RGB indicator, one bit per colour.
type LedMask uint8

const (
	LedRed LedMask = 1 << iota
	LedGreen
	LedBlue

	LedAll = LedRed | LedGreen | LedBlue
)

// LedState is the remembered on/off state of the three indicator LEDs.
type LedState struct {
	Red, Green, Blue bool
}

// Mask packs the state for the LED driver.
func (s LedState) Mask() LedMask {
	var m LedMask
	if s.Red {
		m |= LedRed
	}
	if s.Green {
		m |= LedGreen
	}
	if s.Blue {
		m |= LedBlue
	}
	return m
}

// LedStateFromMask unpacks a mask.
func LedStateFromMask(m LedMask) LedState {
	return LedState{
		Red:   m&LedRed != 0,
		Green: m&LedGreen != 0,
		Blue:  m&LedBlue != 0,
	}
}

// ApplyJoystick runs the LED toggle rules for one joystick sample and returns
// the new state. Every held direction is handled, in this order:
//
//	center  all on
//	down    all off
//	left    toggle red
//	up      toggle green
//	right   toggle blue
//
// push is called with the combined mask after each rule that fires.
// The sample is level-triggered: a direction held across cycles toggles once per cycle.
func ApplyJoystick(state LedState, joy JoystickMask, push func(LedMask)) LedState {
	emit := func() {
		if push != nil {
			push(state.Mask())
		}
	}

	if joy.Has(JoyCenter) {
		state = LedState{Red: true, Green: true, Blue: true}
		emit()
	}
	if joy.Has(JoyDown) {
		state = LedState{}
		emit()
	}
	if joy.Has(JoyLeft) {
		state.Red = !state.Red
		emit()
	}
	if joy.Has(JoyUp) {
		state.Green = !state.Green
		emit()
	}
	if joy.Has(JoyRight) {
		state.Blue = !state.Blue
		emit()
	}
	return state
}
