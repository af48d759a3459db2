package sim

import (
	"errors"
	"testing"

	"aircon/core"
)

func TestClockWraps(t *testing.T) {
	c := NewClock(0xFFFFFFF0)
	c.DelayMillis(0x20)

	if c.NowMillis() != 0x10 {
		t.Errorf("Expected clock to wrap to 0x10, got %#x", c.NowMillis())
	}
	if c.Slept.Load() != 0x20 {
		t.Errorf("Expected 0x20 ms slept, got %#x", c.Slept.Load())
	}
}

func TestScriptRepeatsLastValue(t *testing.T) {
	s := NewScript[uint32](1, 2)
	want := []uint32{1, 2, 2, 2}
	for i, w := range want {
		got, err := s.read()
		if err != nil {
			t.Fatalf("read %d: unexpected error %v", i, err)
		}
		if got != w {
			t.Errorf("read %d: expected %d, got %d", i, w, got)
		}
	}
}

func TestScriptFailAt(t *testing.T) {
	s := NewScript[uint16](10, 20, 30).FailAt(1, core.ErrSensorTimeout)

	if v, err := s.read(); err != nil || v != 10 {
		t.Fatalf("Expected 10, got %d (%v)", v, err)
	}
	if _, err := s.read(); !errors.Is(err, core.ErrSensorTimeout) {
		t.Fatalf("Expected timeout on second read, got %v", err)
	}
	// The failed read still consumes its slot.
	if v, err := s.read(); err != nil || v != 30 {
		t.Fatalf("Expected 30, got %d (%v)", v, err)
	}
}

func TestMotorRejectsDutyAbovePeriod(t *testing.T) {
	m := NewMotor(100)
	if err := m.SetMotorDuty(101); !errors.Is(err, core.ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
	if err := m.SetMotorDuty(100); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if m.Duty() != 100 {
		t.Errorf("Expected duty 100, got %d", m.Duty())
	}
}

func TestBoardDrivesController(t *testing.T) {
	b := NewBoard(core.DefaultConfig())
	b.Pot.Set(2048)
	b.Light.Set(300)
	b.Temp.Set(235)

	ctrl, err := core.NewController(b.Core(), core.DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	ctrl.RunCycles(3)

	if ctrl.Mode() != core.ModeNight {
		t.Errorf("Expected night mode, got %v", ctrl.Mode())
	}
	if b.Motor.Duty() != 12502 {
		t.Errorf("Expected duty 12502, got %d", b.Motor.Duty())
	}
	if b.Clock.NowMillis() != 600 {
		t.Errorf("Expected 600 ms of simulated time, got %d", b.Clock.NowMillis())
	}
	if b.Frame.Flushes != 3 {
		t.Errorf("Expected one flush per cycle, got %d", b.Frame.Flushes)
	}
	// Night palette: header glyphs are lit on a dark background.
	if b.Frame.Lit(core.TextX, core.HeaderY, 11*core.GlyphWidth, core.GlyphHeight) == 0 {
		t.Error("Expected header text to be drawn")
	}
	if b.Frame.Pixel(core.ScreenWidth-1, core.ScreenHeight-1) {
		t.Error("Expected dark background in night mode")
	}
}
