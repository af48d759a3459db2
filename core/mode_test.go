package core

import "testing"

func TestDecideMode(t *testing.T) {
	tests := []struct {
		light uint32
		want  DisplayMode
	}{
		{0, ModeNight},
		{300, ModeNight},
		{499, ModeNight},
		{500, ModeDay},
		{501, ModeDay},
		{4095, ModeDay},
	}
	for _, tt := range tests {
		if got := DecideMode(tt.light, DefaultLightThreshold); got != tt.want {
			t.Errorf("DecideMode(%d) = %v, expected %v", tt.light, got, tt.want)
		}
	}
}

func TestModeUnknownIsNeitherMode(t *testing.T) {
	if ModeUnknown == ModeDay || ModeUnknown == ModeNight {
		t.Fatal("start-up mode must differ from both real modes")
	}
	if ModeUnknown.String() != "unknown" {
		t.Errorf("Expected unknown, got %s", ModeUnknown)
	}
}

func TestPalette(t *testing.T) {
	if fg, bg := ModeNight.Palette(); fg != ColorWhite || bg != ColorBlack {
		t.Errorf("Night palette: got fg=%d bg=%d", fg, bg)
	}
	if fg, bg := ModeDay.Palette(); fg != ColorBlack || bg != ColorWhite {
		t.Errorf("Day palette: got fg=%d bg=%d", fg, bg)
	}
}
