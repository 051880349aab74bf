//go:build rp2040

package main

import (
	"machine"

	"crosswalk/core"
)

// BitDogLab pin assignment. The RGB signal head uses the red and
// green channels only; yellow is rendered by driving both.
const (
	ledRedPin   = core.GPIOPin(13) // GP13
	ledGreenPin = core.GPIOPin(11) // GP11

	buzzerPinA = core.GPIOPin(10) // GP10
	buzzerPinB = core.GPIOPin(21) // GP21
)

const (
	buttonPin1 = machine.GP5 // side 1, priority on tie
	buttonPin2 = machine.GP6 // side 2

	neoPixelPin = machine.GP7

	oledSDAPin = machine.GP14
	oledSCLPin = machine.GP15
)
