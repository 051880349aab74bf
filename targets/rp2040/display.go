//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	oledWidth  = 128
	oledHeight = 64
	oledAddr   = 0x3C
	oledFreq   = 400000
)

var textColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// OLEDDisplay implements the core DisplayDriver on the board's
// SSD1306 panel (I2C1, SDA GP14, SCL GP15).
type OLEDDisplay struct {
	dev ssd1306.Device
}

// NewOLEDDisplay configures the I2C bus and the panel.
func NewOLEDDisplay() (*OLEDDisplay, error) {
	err := machine.I2C1.Configure(machine.I2CConfig{
		Frequency: oledFreq,
		SDA:       oledSDAPin,
		SCL:       oledSCLPin,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C1)
	dev.Configure(ssd1306.Config{
		Width:    oledWidth,
		Height:   oledHeight,
		Address:  oledAddr,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()

	return &OLEDDisplay{dev: dev}, nil
}

// Clear blanks the panel.
func (d *OLEDDisplay) Clear() {
	d.dev.ClearBuffer()
	_ = d.dev.Display()
}

// DrawText draws one line of text at the given pixel position.
func (d *OLEDDisplay) DrawText(x, y int16, s string) {
	tinyfont.WriteLine(&d.dev, &proggy.TinySZ8pt7b, x, y, s, textColor)
	_ = d.dev.Display()
}
