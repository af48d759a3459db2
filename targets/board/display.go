//go:build rp2040 || rp2350

package board

import (
	"machine"

	"tinygo.org/x/drivers/ssd1306"

	"aircon/core"
	"aircon/display"
)

// OLED pins on SPI0.
const (
	oledSCK   = machine.GPIO18
	oledSDO   = machine.GPIO19
	oledCS    = machine.GPIO17
	oledDC    = machine.GPIO20
	oledReset = machine.GPIO21
)

// NewOLED brings up the 128×64 SSD1306 panel on SPI0.
func NewOLED() (*display.Screen, error) {
	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8 * machine.MHz,
		SCK:       oledSCK,
		SDO:       oledSDO,
	})
	if err != nil {
		return nil, &core.InitError{Peripheral: "spi0", Err: err}
	}

	dev := ssd1306.NewSPI(machine.SPI0, oledDC, oledReset, oledCS)
	dev.Configure(ssd1306.Config{
		Width:    core.ScreenWidth,
		Height:   core.ScreenHeight,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()
	return display.New(&dev), nil
}
