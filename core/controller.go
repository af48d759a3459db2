package core

import "errors"

// Stats counts what the loop has done since start.
type Stats struct {
	Cycles         uint32
	ChromeRedraws  uint32
	LedPushes      uint32
	SensorTimeouts uint32
	SensorFaults   uint32
	ActuatorErrors uint32
}

// Controller owns the state carried between cycles: the display mode, the
// LED state and the last good sensor readings. Nothing else reads or writes it.
type Controller struct {
	board Board
	cfg   Config
	sink  TelemetrySink

	mode DisplayMode
	leds LedState

	lastPot   uint16
	lastLight uint32
	lastTemp  int32

	buf   [TextBufferSize]byte
	flags uint8
	stats Stats
}

// NewController validates the board and returns a controller in its start-up
// state: mode unknown (so the first cycle draws the chrome) and all LEDs off.
func NewController(board Board, cfg Config) (*Controller, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()
	return &Controller{
		board: board,
		cfg:   cfg,
		mode:  ModeUnknown,
	}, nil
}

// SetTelemetrySink installs a sink that receives every cycle's snapshot.
func (c *Controller) SetTelemetrySink(sink TelemetrySink) {
	c.sink = sink
}

// Mode returns the persisted display mode.
func (c *Controller) Mode() DisplayMode { return c.mode }

// Leds returns the persisted LED state.
func (c *Controller) Leds() LedState { return c.leds }

// Stats returns the loop counters.
func (c *Controller) Stats() Stats { return c.stats }

// Config returns the configuration in effect, defaults applied.
func (c *Controller) Config() Config { return c.cfg }

// Run executes control cycles forever.
func (c *Controller) Run() {
	for {
		c.Cycle()
	}
}

// RunCycles executes n control cycles.
func (c *Controller) RunCycles(n int) {
	for i := 0; i < n; i++ {
		c.Cycle()
	}
}

// RunUntil executes control cycles until stop returns true; stop is checked before each cycle.
func (c *Controller) RunUntil(stop func() bool) {
	for !stop() {
		c.Cycle()
	}
}

// Cycle runs one sample → decide → actuate → pace iteration and returns its snapshot.
func (c *Controller) Cycle() Telemetry {
	c.flags = 0
	t := Telemetry{Ticks: c.board.Clock.NowMillis()}

	// Motor speed from the setpoint
	pot := c.samplePotentiometer()
	duty, err := DutyCycle(pot, c.board.Motor.PeriodTicks())
	if err != nil {
		c.sensorFault(SensorPotentiometer)
		pot = c.lastPot
		duty, _ = DutyCycle(pot, c.board.Motor.PeriodTicks())
	} else {
		c.lastPot = pot
	}
	if err := c.board.Motor.SetMotorDuty(duty); err != nil {
		c.stats.ActuatorErrors++
	}
	t.Potentiometer, t.Duty = pot, duty

	light := c.sampleLight()
	t.Light = light

	joy := c.sampleJoystick()
	c.leds = ApplyJoystick(c.leds, joy, c.pushLeds)
	t.Joystick = joy

	// Chrome is redrawn on a mode transition only
	if mode := DecideMode(light, c.cfg.LightThreshold); mode != c.mode {
		c.mode = mode
		c.drawChrome()
		c.stats.ChromeRedraws++
		c.flags |= FlagChromeRedraw
		RecordEvent(EvtModeChange, t.Ticks, uint32(mode))
		DebugPrintln("[MODE] " + mode.String() + " light=" + utoa(light))
	}

	temp := c.sampleTemperature()
	c.drawValue(TempFieldX, TempY, TempFieldW, int(temp))
	if c.cfg.ShowLight {
		c.drawValue(LightFieldX, LightY, LightFieldW, int(light))
	}
	if err := c.board.Display.Flush(); err != nil {
		c.stats.ActuatorErrors++
	}

	t.Mode = c.mode
	t.Temperature = temp
	t.Leds = c.leds.Mask()
	t.Flags = c.flags
	c.stats.Cycles++
	if c.sink != nil {
		c.sink.Publish(t)
	}

	c.board.Sleeper.DelayMillis(c.cfg.LoopPeriodMillis)
	return t
}

// samplePotentiometer returns the raw reading. Range checking happens in
// DutyCycle; a failed conversion yields the last good reading.
func (c *Controller) samplePotentiometer() uint16 {
	v, err := c.board.Potentiometer.SamplePotentiometer()
	if err != nil {
		c.sensorError(SensorPotentiometer, err)
		return c.lastPot
	}
	return v
}

func (c *Controller) sampleLight() uint32 {
	v, err := c.board.Light.ReadLight()
	if err != nil {
		c.sensorError(SensorLight, err)
		return c.lastLight
	}
	c.lastLight = v
	return v
}

func (c *Controller) sampleTemperature() int32 {
	v, err := c.board.Temperature.ReadTemperature()
	if err != nil {
		c.sensorError(SensorTemperature, err)
		return c.lastTemp
	}
	c.lastTemp = v
	return v
}

// sampleJoystick treats a failed read as nothing pressed.
func (c *Controller) sampleJoystick() JoystickMask {
	m, err := c.board.Joystick.ReadJoystick()
	if err != nil {
		c.sensorError(SensorJoystick, err)
		return 0
	}
	return m
}

func (c *Controller) pushLeds(mask LedMask) {
	c.stats.LedPushes++
	RecordEvent(EvtLedChange, c.board.Clock.NowMillis(), uint32(mask))
	if err := c.board.LEDs.SetLeds(mask); err != nil {
		c.stats.ActuatorErrors++
	}
}

func (c *Controller) sensorError(sensor uint32, err error) {
	if errors.Is(err, ErrSensorTimeout) {
		c.stats.SensorTimeouts++
		c.flags |= FlagSensorTimeout
		RecordEvent(EvtSensorTimeout, c.board.Clock.NowMillis(), sensor)
		DebugPrintln("[SENSOR] timeout sensor=" + utoa(sensor))
		return
	}
	c.sensorFault(sensor)
}

func (c *Controller) sensorFault(sensor uint32) {
	c.stats.SensorFaults++
	c.flags |= FlagSensorFault
	RecordEvent(EvtSensorFault, c.board.Clock.NowMillis(), sensor)
	DebugPrintln("[SENSOR] fault sensor=" + utoa(sensor))
}
