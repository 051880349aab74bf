//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"crosswalk/core"
	"tinygo.org/x/drivers/ws2812"
)

const (
	matrixSize   = 5 // 5x5 NeoPixel matrix
	matrixPixels = matrixSize * matrixSize
)

// Dim red; the matrix sits next to the pedestrian head and full
// brightness washes out the OLED at night.
var crossingColor = color.RGBA{R: 32}

// MatrixStrip implements the core StripDriver on the board's 5x5
// WS2812 matrix. While a red phase is pedestrian-owned it lights the
// two columns on the granted side.
type MatrixStrip struct {
	dev ws2812.Device
	buf [matrixPixels]color.RGBA
}

// NewMatrixStrip configures the data pin and blanks the matrix.
func NewMatrixStrip(pin machine.Pin) *MatrixStrip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	s := &MatrixStrip{dev: ws2812.New(pin)}
	s.flush()
	return s
}

// ShowCrossing lights the indicator for the side that owns the
// current red phase. Side 1 is the left pair of columns, side 2 the
// right pair.
func (s *MatrixStrip) ShowCrossing(side core.Side) {
	loCol, hiCol := 0, 1
	if side == core.Side2 {
		loCol, hiCol = 3, 4
	}

	for row := 0; row < matrixSize; row++ {
		for col := 0; col < matrixSize; col++ {
			c := color.RGBA{}
			if col == loCol || col == hiCol {
				c = crossingColor
			}
			s.buf[pixelIndex(row, col)] = c
		}
	}
	s.flush()
}

// ClearCrossing blanks the matrix.
func (s *MatrixStrip) ClearCrossing() {
	for i := range s.buf {
		s.buf[i] = color.RGBA{}
	}
	s.flush()
}

func (s *MatrixStrip) flush() {
	_ = s.dev.WriteColors(s.buf[:])
}

// pixelIndex maps row/column to the matrix's serpentine wiring:
// even rows run left to right, odd rows right to left.
func pixelIndex(row, col int) int {
	if row%2 == 1 {
		col = matrixSize - 1 - col
	}
	return row*matrixSize + col
}
