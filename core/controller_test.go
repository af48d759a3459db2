package core

import (
	"errors"
	"testing"
)

func TestNewControllerRejectsIncompleteBoard(t *testing.T) {
	rig := newTestRig()
	b := rig.board()
	b.Display = nil

	_, err := NewController(b, DefaultConfig())
	if !errors.Is(err, ErrInitialization) {
		t.Fatalf("Expected ErrInitialization, got %v", err)
	}
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Peripheral != "display" {
		t.Errorf("Expected display InitError, got %v", err)
	}
}

func TestNewControllerStartsUnknown(t *testing.T) {
	rig := newTestRig()
	ctrl, err := NewController(rig.board(), Config{})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	if ctrl.Mode() != ModeUnknown {
		t.Errorf("Expected unknown start-up mode, got %v", ctrl.Mode())
	}
	if ctrl.Leds() != (LedState{}) {
		t.Errorf("Expected all LEDs off, got %+v", ctrl.Leds())
	}
	if ctrl.Config() != DefaultConfig() {
		t.Errorf("Expected defaults applied, got %+v", ctrl.Config())
	}
}

func TestCycleEndToEnd(t *testing.T) {
	rig := newTestRig()
	rig.pot.values = []uint16{2048}
	rig.light.values = []uint32{300}
	rig.temp.values = []int32{235}

	ctrl, err := NewController(rig.board(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	tel := ctrl.Cycle()

	if len(rig.motor.duties) != 1 || rig.motor.duties[0] != 12502 {
		t.Errorf("Expected duty 12502, got %v", rig.motor.duties)
	}
	if ctrl.Mode() != ModeNight {
		t.Errorf("Expected night mode, got %v", ctrl.Mode())
	}
	if rig.disp.count("clear") != 1 {
		t.Errorf("Expected one chrome clear, got %d", rig.disp.count("clear"))
	}
	text, ok := rig.disp.lastText(TempFieldX, TempY)
	if !ok || text != "235" {
		t.Errorf("Expected temperature 235, got %q", text)
	}
	for _, c := range rig.disp.calls {
		if c.op == "text" && (c.fg != ColorWhite || c.bg != ColorBlack) {
			t.Errorf("Expected night palette for %q, got fg=%d bg=%d", c.text, c.fg, c.bg)
		}
	}
	if rig.disp.flushes != 1 {
		t.Errorf("Expected one flush, got %d", rig.disp.flushes)
	}
	if rig.clock.now != 200 {
		t.Errorf("Expected 200 ms delay, got %d", rig.clock.now)
	}
	if tel.Flags&FlagChromeRedraw == 0 {
		t.Error("Expected chrome redraw flag on first cycle")
	}
	if tel.Duty != 12502 || tel.Temperature != 235 || tel.Light != 300 {
		t.Errorf("Unexpected telemetry %+v", tel)
	}
}

func TestChromeRedrawOnlyOnTransition(t *testing.T) {
	rig := newTestRig()
	rig.light.values = []uint32{800, 800, 800, 100, 100, 900}

	ctrl, err := NewController(rig.board(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	wantRedraws := []uint32{1, 1, 1, 2, 2, 3}
	for i, want := range wantRedraws {
		ctrl.Cycle()
		if got := ctrl.Stats().ChromeRedraws; got != want {
			t.Errorf("cycle %d: expected %d redraws, got %d", i, want, got)
		}
	}
	if rig.disp.count("clear") != 3 {
		t.Errorf("Expected 3 clears, got %d", rig.disp.count("clear"))
	}
	// Temperature is rendered every cycle regardless of mode changes.
	if rig.disp.flushes != len(wantRedraws) {
		t.Errorf("Expected %d flushes, got %d", len(wantRedraws), rig.disp.flushes)
	}
}

func TestCycleJoystickPushes(t *testing.T) {
	rig := newTestRig()
	rig.joy.values = []JoystickMask{JoyCenter, 0, JoyLeft, JoyDown}

	ctrl, err := NewController(rig.board(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.RunCycles(4)

	want := []LedMask{LedAll, LedGreen | LedBlue, 0}
	if len(rig.leds.pushes) != len(want) {
		t.Fatalf("Expected pushes %v, got %v", want, rig.leds.pushes)
	}
	for i := range want {
		if rig.leds.pushes[i] != want[i] {
			t.Errorf("push %d: expected %03b, got %03b", i, want[i], rig.leds.pushes[i])
		}
	}
	if ctrl.Stats().LedPushes != 3 {
		t.Errorf("Expected 3 pushes counted, got %d", ctrl.Stats().LedPushes)
	}
}

func TestCycleSensorTimeoutReusesLastValue(t *testing.T) {
	rig := newTestRig()
	rig.pot.values = []uint16{1000, 3000}
	rig.pot.errs = map[int]error{1: ErrSensorTimeout}
	rig.temp.values = []int32{215, 999}
	rig.temp.errs = map[int]error{1: errMock}

	ctrl, err := NewController(rig.board(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	first := ctrl.Cycle()
	second := ctrl.Cycle()

	if second.Potentiometer != first.Potentiometer || second.Duty != first.Duty {
		t.Errorf("Expected last good pot reading, got %d (duty %d)", second.Potentiometer, second.Duty)
	}
	if second.Temperature != 215 {
		t.Errorf("Expected last good temperature, got %d", second.Temperature)
	}
	if second.Flags&FlagSensorTimeout == 0 || second.Flags&FlagSensorFault == 0 {
		t.Errorf("Expected timeout and fault flags, got %03b", second.Flags)
	}
	stats := ctrl.Stats()
	if stats.SensorTimeouts != 1 || stats.SensorFaults != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestCyclePotentiometerOutOfRange(t *testing.T) {
	rig := newTestRig()
	rig.pot.values = []uint16{4095, ADCMax + 10}

	ctrl, err := NewController(rig.board(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.Cycle()
	tel := ctrl.Cycle()

	if tel.Duty != 24999 {
		t.Errorf("Expected duty from last good reading, got %d", tel.Duty)
	}
	if tel.Flags&FlagSensorFault == 0 {
		t.Error("Expected sensor fault flag")
	}
}

func TestCycleTemperatureTooWideKeepsStaleText(t *testing.T) {
	rig := newTestRig()
	rig.temp.values = []int32{235, 1234567890}

	ctrl, err := NewController(rig.board(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.RunCycles(2)

	text, _ := rig.disp.lastText(TempFieldX, TempY)
	if text != "235" {
		t.Errorf("Expected stale value 235, got %q", text)
	}
}

func TestCycleShowLight(t *testing.T) {
	rig := newTestRig()
	rig.light.values = []uint32{640}

	ctrl, err := NewController(rig.board(), Config{ShowLight: true})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.Cycle()

	if text, _ := rig.disp.lastText(TextX, LightY); text != LightLabel {
		t.Errorf("Expected light label, got %q", text)
	}
	if text, _ := rig.disp.lastText(LightFieldX, LightY); text != "640" {
		t.Errorf("Expected light value 640, got %q", text)
	}
}

type recordingSink struct {
	got []Telemetry
}

func (r *recordingSink) Publish(t Telemetry) { r.got = append(r.got, t) }

func TestCyclePublishesTelemetry(t *testing.T) {
	rig := newTestRig()
	rig.clock.now = 1000
	ctrl, err := NewController(rig.board(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	sink := &recordingSink{}
	ctrl.SetTelemetrySink(sink)
	ctrl.RunCycles(2)

	if len(sink.got) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(sink.got))
	}
	if sink.got[0].Ticks != 1000 || sink.got[1].Ticks != 1200 {
		t.Errorf("Expected ticks 1000 and 1200, got %d and %d", sink.got[0].Ticks, sink.got[1].Ticks)
	}
	if sink.got[1].Flags&FlagChromeRedraw != 0 {
		t.Error("Unexpected redraw flag on steady second cycle")
	}
}

func TestRunUntil(t *testing.T) {
	rig := newTestRig()
	ctrl, err := NewController(rig.board(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.RunUntil(func() bool { return rig.clock.now >= 1000 })

	if ctrl.Stats().Cycles != 5 {
		t.Errorf("Expected 5 cycles, got %d", ctrl.Stats().Cycles)
	}
}

func TestCycleRecordsModeEvent(t *testing.T) {
	ClearEvents()
	defer ClearEvents()

	rig := newTestRig()
	rig.light.values = []uint32{100}
	ctrl, err := NewController(rig.board(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.Cycle()

	found := false
	for _, evt := range Events() {
		if evt.Type == EvtModeChange && evt.Value == uint32(ModeNight) {
			found = true
		}
	}
	if !found {
		t.Error("Expected a mode change event")
	}
}

func TestChromeRedrawsEveryCycleAtThreshold(t *testing.T) {
	rig := newTestRig()
	rig.light.values = []uint32{499, 500, 499, 500}

	ctrl, err := NewController(rig.board(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.RunCycles(4)

	// no hysteresis: every crossing repaints the whole screen
	if ctrl.Stats().ChromeRedraws != 4 {
		t.Errorf("Expected 4 redraws, got %d", ctrl.Stats().ChromeRedraws)
	}
}
