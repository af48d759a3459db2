package core

import "errors"

var errMock = errors.New("mock failure")

// Mock collaborators for testing. Each reading slice is served in order and
// the last value repeats; errs[i] replaces the i-th reading.

type mockPot struct {
	values []uint16
	errs   map[int]error
	calls  int
}

func (m *mockPot) SamplePotentiometer() (uint16, error) {
	i := m.calls
	m.calls++
	if err := m.errs[i]; err != nil {
		return 0, err
	}
	return pick(m.values, i), nil
}

type mockLight struct {
	values []uint32
	errs   map[int]error
	calls  int
}

func (m *mockLight) ReadLight() (uint32, error) {
	i := m.calls
	m.calls++
	if err := m.errs[i]; err != nil {
		return 0, err
	}
	return pick(m.values, i), nil
}

type mockTemp struct {
	values []int32
	errs   map[int]error
	calls  int
}

func (m *mockTemp) ReadTemperature() (int32, error) {
	i := m.calls
	m.calls++
	if err := m.errs[i]; err != nil {
		return 0, err
	}
	return pick(m.values, i), nil
}

type mockJoystick struct {
	values []JoystickMask
	calls  int
}

func (m *mockJoystick) ReadJoystick() (JoystickMask, error) {
	i := m.calls
	m.calls++
	return pick(m.values, i), nil
}

func pick[T any](values []T, i int) T {
	var zero T
	if len(values) == 0 {
		return zero
	}
	if i >= len(values) {
		i = len(values) - 1
	}
	return values[i]
}

type mockMotor struct {
	period uint32
	duties []uint32
}

func (m *mockMotor) PeriodTicks() uint32 { return m.period }

func (m *mockMotor) SetMotorDuty(ticks uint32) error {
	m.duties = append(m.duties, ticks)
	return nil
}

type mockLeds struct {
	pushes []LedMask
}

func (m *mockLeds) SetLeds(mask LedMask) error {
	m.pushes = append(m.pushes, mask)
	return nil
}

type drawCall struct {
	op     string
	x, y   int16
	text   string
	fg, bg Color
}

type mockDisplay struct {
	calls   []drawCall
	flushes int
}

func (m *mockDisplay) ClearScreen(c Color) {
	m.calls = append(m.calls, drawCall{op: "clear", bg: c})
}

func (m *mockDisplay) FillRect(x, y, w, h int16, c Color) {
	m.calls = append(m.calls, drawCall{op: "fill", x: x, y: y, bg: c})
}

func (m *mockDisplay) DrawText(x, y int16, text string, fg, bg Color) {
	m.calls = append(m.calls, drawCall{op: "text", x: x, y: y, text: text, fg: fg, bg: bg})
}

func (m *mockDisplay) Flush() error {
	m.flushes++
	return nil
}

func (m *mockDisplay) count(op string) int {
	n := 0
	for _, c := range m.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

// lastText returns the most recent text drawn at (x, y).
func (m *mockDisplay) lastText(x, y int16) (string, bool) {
	for i := len(m.calls) - 1; i >= 0; i-- {
		c := m.calls[i]
		if c.op == "text" && c.x == x && c.y == y {
			return c.text, true
		}
	}
	return "", false
}

type mockClock struct {
	now uint32
}

func (m *mockClock) NowMillis() uint32 { return m.now }

func (m *mockClock) DelayMillis(ms uint32) { m.now += ms }

type mockADC struct {
	configured []ADCChannelID
	value      ADCValue
	readyAfter int
	polls      int
	started    int
	startErr   error
}

func (m *mockADC) ConfigureChannel(ch ADCChannelID) error {
	m.configured = append(m.configured, ch)
	return nil
}

func (m *mockADC) StartConversion(ch ADCChannelID) error {
	m.started++
	m.polls = 0
	return m.startErr
}

func (m *mockADC) ConversionDone(ch ADCChannelID) bool {
	m.polls++
	return m.readyAfter >= 0 && m.polls > m.readyAfter
}

func (m *mockADC) ReadResult(ch ADCChannelID) (ADCValue, error) {
	return m.value, nil
}

type mockGPIO struct {
	outputs map[GPIOPin]bool
	inputs  map[GPIOPin]bool
	pullups []GPIOPin
}

func newMockGPIO() *mockGPIO {
	return &mockGPIO{outputs: map[GPIOPin]bool{}, inputs: map[GPIOPin]bool{}}
}

func (m *mockGPIO) ConfigureOutput(pin GPIOPin) error {
	m.outputs[pin] = false
	return nil
}

func (m *mockGPIO) ConfigureInputPullUp(pin GPIOPin) error {
	m.pullups = append(m.pullups, pin)
	m.inputs[pin] = true
	return nil
}

func (m *mockGPIO) SetPin(pin GPIOPin, high bool) error {
	if _, ok := m.outputs[pin]; !ok {
		return errMock
	}
	m.outputs[pin] = high
	return nil
}

func (m *mockGPIO) ReadPin(pin GPIOPin) bool {
	return m.inputs[pin]
}

type mockPWM struct {
	period   uint32
	compares []uint32
	err      error
}

func (m *mockPWM) ConfigureHardwarePWM(pin PWMPin, periodTicks uint32) (uint32, error) {
	m.period = periodTicks
	return periodTicks, m.err
}

func (m *mockPWM) SetCompare(pin PWMPin, value uint32) error {
	m.compares = append(m.compares, value)
	return nil
}

// testRig bundles a board of mocks.
type testRig struct {
	pot   *mockPot
	light *mockLight
	temp  *mockTemp
	joy   *mockJoystick
	motor *mockMotor
	leds  *mockLeds
	disp  *mockDisplay
	clock *mockClock
}

func newTestRig() *testRig {
	return &testRig{
		pot:   &mockPot{},
		light: &mockLight{values: []uint32{1000}},
		temp:  &mockTemp{values: []int32{200}},
		joy:   &mockJoystick{},
		motor: &mockMotor{period: 24999},
		leds:  &mockLeds{},
		disp:  &mockDisplay{},
		clock: &mockClock{},
	}
}

func (r *testRig) board() Board {
	return Board{
		Potentiometer: r.pot,
		Light:         r.light,
		Temperature:   r.temp,
		Joystick:      r.joy,
		Motor:         r.motor,
		LEDs:          r.leds,
		Display:       r.disp,
		Clock:         r.clock,
		Sleeper:       r.clock,
	}
}
