// Package display draws the controller's screen on any tinygo drivers.Displayer.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"aircon/core"
)

var (
	black = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// RGBA maps a palette entry to a driver colour.
func RGBA(c core.Color) color.RGBA {
	if c == core.ColorWhite {
		return white
	}
	return black
}

// Screen implements core.DisplayDriver on a drivers.Displayer.
// Text uses the Proggy TinySZ 8pt font on the core's 6×8 grid.
type Screen struct {
	dev  drivers.Displayer
	font tinyfont.Fonter

	// baseline offset from the top of a text cell
	ascent int16
}

// New returns a Screen drawing on dev.
func New(dev drivers.Displayer) *Screen {
	return &Screen{
		dev:    dev,
		font:   &proggy.TinySZ8pt7b,
		ascent: core.GlyphHeight - 1,
	}
}

// ClearScreen implements core.DisplayDriver.
func (s *Screen) ClearScreen(c core.Color) {
	w, h := s.dev.Size()
	s.FillRect(0, 0, w, h, c)
}

// FillRect implements core.DisplayDriver. The rectangle is clipped to the panel.
func (s *Screen) FillRect(x, y, w, h int16, c core.Color) {
	sw, sh := s.dev.Size()
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, sw), min(y+h, sh)
	rgba := RGBA(c)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.dev.SetPixel(px, py, rgba)
		}
	}
}

// DrawText implements core.DisplayDriver. The background box spans one cell
// per character so glyphs of the previous text never show through.
func (s *Screen) DrawText(x, y int16, text string, fg, bg core.Color) {
	if text == "" {
		return
	}
	s.FillRect(x, y, int16(len(text))*core.GlyphWidth, core.GlyphHeight, bg)
	tinyfont.WriteLine(s.dev, s.font, x, y+s.ascent, text, RGBA(fg))
}

// Flush implements core.DisplayDriver.
func (s *Screen) Flush() error {
	return s.dev.Display()
}
