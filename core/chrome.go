package core

// Screen geometry, in pixels. Glyphs are drawn on a fixed 6×8 grid.
const (
	ScreenWidth  = 128
	ScreenHeight = 64
	GlyphWidth   = 6
	GlyphHeight  = 8
)

// Chrome text and layout.
const (
	HeaderText = "       A05 "
	TitleText  = "Climate ctrl "
	TempLabel  = "Temperature:"
	LightLabel = "Light: "

	HeaderY = 1
	TitleY  = 10
	TempY   = 20
	LightY  = 30

	TextX = 1
)

// Live value fields sit immediately right of their labels.
const (
	TempFieldX  = TextX + int16(len(TempLabel))*GlyphWidth
	TempFieldW  = ScreenWidth - TempFieldX
	LightFieldX = TextX + int16(len(LightLabel))*GlyphWidth
	LightFieldW = ScreenWidth - LightFieldX
)

// drawChrome repaints the whole screen for the current mode.
func (c *Controller) drawChrome() {
	fg, bg := c.mode.Palette()
	d := c.board.Display

	d.ClearScreen(bg)
	d.DrawText(TextX, HeaderY, HeaderText, fg, bg)
	d.DrawText(TextX, TitleY, TitleText, fg, bg)
	d.DrawText(TextX, TempY, TempLabel, fg, bg)
	if c.cfg.ShowLight {
		d.DrawText(TextX, LightY, LightLabel, fg, bg)
	}
}

// drawValue renders v into the shared text buffer and repaints one value field.
// A value that does not fit leaves the previous text in the buffer, so the
// field keeps showing the stale value.
func (c *Controller) drawValue(x, y, w int16, v int) {
	fg, bg := c.mode.Palette()
	d := c.board.Display

	IntToString(v, c.buf[:], 10)
	d.FillRect(x, y, w, GlyphHeight, bg)
	d.DrawText(x, y, CString(c.buf[:]), fg, bg)
}
