//go:build rp2350

// Package pio drives the RGB indicator as a single WS2812 pixel from a PIO
// state machine.
package pio

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"aircon/core"
)

// Brightness of a lit channel. Full scale is blinding on a desk.
const Brightness = 0x30

// Indicator implements core.LedDriver on a WS2812 pixel. The state machine
// refreshes the pixel from its RX FIFO continuously, so SetLeds only stores
// the new colour.
type Indicator struct {
	pixels *piolib.WS2812bFourPixels
}

// NewIndicator claims a state machine on PIO0 and drives pin.
func NewIndicator(pin machine.Pin) (*Indicator, error) {
	sm, err := rp2pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, &core.InitError{Peripheral: "pio0", Err: err}
	}
	px, err := piolib.NewWS2812bFourPixelsRGB(sm, pin)
	if err != nil {
		return nil, &core.InitError{Peripheral: "ws2812", Err: err}
	}
	ind := &Indicator{pixels: px}
	if err := ind.SetLeds(0); err != nil {
		return nil, err
	}
	return ind, nil
}

// SetLeds implements core.LedDriver.
func (i *Indicator) SetLeds(mask core.LedMask) error {
	i.pixels.SetRaw(0, GRB(mask))
	return nil
}

// GRB packs a mask into the pixel's wire order, green in the top byte.
func GRB(mask core.LedMask) uint32 {
	var v uint32
	if mask&core.LedGreen != 0 {
		v |= Brightness << 24
	}
	if mask&core.LedRed != 0 {
		v |= Brightness << 16
	}
	if mask&core.LedBlue != 0 {
		v |= Brightness << 8
	}
	return v
}
