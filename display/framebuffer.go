package display

import (
	"image/color"
	"strings"
)

// FrameBuffer is an in-memory monochrome drivers.Displayer, used by the
// simulator and tests in place of a panel.
type FrameBuffer struct {
	width, height int16
	pixels        []bool

	// Flushes counts Display calls.
	Flushes int
}

// NewFrameBuffer returns a cleared (all dark) frame buffer.
func NewFrameBuffer(width, height int16) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]bool, int(width)*int(height)),
	}
}

// Size implements drivers.Displayer.
func (f *FrameBuffer) Size() (x, y int16) {
	return f.width, f.height
}

// SetPixel implements drivers.Displayer. Any non-black colour lights the pixel,
// as on an SSD1306.
func (f *FrameBuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.pixels[int(y)*int(f.width)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
}

// Display implements drivers.Displayer.
func (f *FrameBuffer) Display() error {
	f.Flushes++
	return nil
}

// Pixel reports whether (x, y) is lit.
func (f *FrameBuffer) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	return f.pixels[int(y)*int(f.width)+int(x)]
}

// Lit counts lit pixels inside a rectangle.
func (f *FrameBuffer) Lit(x, y, w, h int16) int {
	n := 0
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if f.Pixel(px, py) {
				n++
			}
		}
	}
	return n
}

// String renders the buffer as text, two pixel rows per line using half blocks.
func (f *FrameBuffer) String() string {
	var b strings.Builder
	for y := int16(0); y < f.height; y += 2 {
		for x := int16(0); x < f.width; x++ {
			top, bottom := f.Pixel(x, y), f.Pixel(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
