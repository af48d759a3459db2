package core

// DisplayMode selects the day or night palette.
type DisplayMode uint8

const (
	ModeDay   DisplayMode = 0
	ModeNight DisplayMode = 1

	// ModeUnknown is the start-up value. It equals neither real mode, so the
	// first cycle always sees a transition and draws the chrome.
	ModeUnknown DisplayMode = 0xFF
)

// DefaultLightThreshold is the raw light reading below which the display goes to night mode.
const DefaultLightThreshold = 500

// DecideMode maps a light reading to a mode: night strictly below threshold, day otherwise.
// There is no hysteresis band.
func DecideMode(light, threshold uint32) DisplayMode {
	if light < threshold {
		return ModeNight
	}
	return ModeDay
}

// Palette returns the text and background colours of a mode.
// Day is dark text on a light screen, night the inverse.
func (m DisplayMode) Palette() (fg, bg Color) {
	if m == ModeNight {
		return ColorWhite, ColorBlack
	}
	return ColorBlack, ColorWhite
}

func (m DisplayMode) String() string {
	switch m {
	case ModeDay:
		return "day"
	case ModeNight:
		return "night"
	default:
		return "unknown"
	}
}
