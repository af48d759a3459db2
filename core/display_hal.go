package core

// Color is a display palette entry. The panel is monochrome.
type Color uint8

const (
	ColorBlack Color = iota
	ColorWhite
)

// DisplayDriver is the drawing surface the loop paints on.
// The core never reads display state back.
type DisplayDriver interface {
	// ClearScreen fills the whole panel with c.
	ClearScreen(c Color)

	// FillRect fills a w×h rectangle whose top-left corner is (x, y).
	FillRect(x, y, w, h int16, c Color)

	// DrawText draws text with its top-left corner at (x, y), glyphs in fg on a bg box.
	DrawText(x, y int16, text string, fg, bg Color)

	// Flush pushes pending drawing to the panel.
	Flush() error
}
