package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"aircon/core"
)

var (
	colorKey   = color.New(color.FgHiCyan)
	colorValue = color.New(color.FgHiYellow)
	colorNight = color.New(color.FgHiBlue, color.Bold)
	colorDay   = color.New(color.FgHiWhite, color.Bold)
	colorWarn  = color.New(color.FgHiRed, color.Bold)
	colorMuted = color.New(color.FgHiBlack)
	colorTitle = color.New(color.FgHiWhite, color.Bold)
)

// printCycle writes one telemetry snapshot as a single line.
func printCycle(w io.Writer, t core.Telemetry) {
	mode := colorDay
	if t.Mode == core.ModeNight {
		mode = colorNight
	}

	fmt.Fprintf(w, "%s %s  %s %s  %s %s  %s %s  %s %s  %s %s",
		colorMuted.Sprintf("%10d", t.Ticks),
		mode.Sprintf("%-5s", t.Mode),
		colorKey.Sprint("pot"), colorValue.Sprintf("%4d", t.Potentiometer),
		colorKey.Sprint("duty"), colorValue.Sprintf("%5d", t.Duty),
		colorKey.Sprint("light"), colorValue.Sprintf("%4d", t.Light),
		colorKey.Sprint("temp"), colorValue.Sprint(formatTenths(t.Temperature)),
		colorKey.Sprint("leds"), colorValue.Sprint(formatLeds(t.Leds)),
	)
	if t.Joystick != 0 {
		fmt.Fprintf(w, "  %s %s", colorKey.Sprint("joy"), colorValue.Sprint(t.Joystick))
	}
	if t.Flags&core.FlagChromeRedraw != 0 {
		fmt.Fprint(w, colorMuted.Sprint("  redraw"))
	}
	if t.Flags&core.FlagSensorTimeout != 0 {
		fmt.Fprint(w, colorWarn.Sprint("  timeout"))
	}
	if t.Flags&core.FlagSensorFault != 0 {
		fmt.Fprint(w, colorWarn.Sprint("  fault"))
	}
	fmt.Fprintln(w)
}

// printStats writes the end-of-run summary.
func printStats(w io.Writer, s core.Stats) {
	colorTitle.Fprintln(w, "Summary")
	rows := []struct {
		key string
		val uint32
	}{
		{"cycles", s.Cycles},
		{"chrome redraws", s.ChromeRedraws},
		{"led pushes", s.LedPushes},
		{"sensor timeouts", s.SensorTimeouts},
		{"sensor faults", s.SensorFaults},
		{"actuator errors", s.ActuatorErrors},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s %s\n", colorKey.Sprintf("%-16s", r.key), colorValue.Sprint(r.val))
	}
}

// formatTenths renders tenths of a degree as "23.5".
func formatTenths(v int32) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}

func formatLeds(m core.LedMask) string {
	s := core.LedStateFromMask(m)
	b := []byte("---")
	if s.Red {
		b[0] = 'R'
	}
	if s.Green {
		b[1] = 'G'
	}
	if s.Blue {
		b[2] = 'B'
	}
	return string(b)
}
