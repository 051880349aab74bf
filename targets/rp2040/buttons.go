//go:build rp2040

package main

import (
	"machine"

	"crosswalk/core"
)

// The IRQ callback cannot capture state, so the intake is reached
// through a package-level variable.
var buttonIntake *core.ButtonIntake

// configureButtons sets both crossing buttons up as pull-up inputs
// with a falling-edge interrupt feeding the intake.
func configureButtons(gpio *RPGPIODriver, intake *core.ButtonIntake) error {
	buttonIntake = intake

	for _, pin := range []machine.Pin{buttonPin1, buttonPin2} {
		if err := gpio.ConfigureInputPullUp(core.GPIOPin(pin)); err != nil {
			return err
		}
	}

	if err := buttonPin1.SetInterrupt(machine.PinFalling, handleButtonEdge); err != nil {
		return err
	}
	return buttonPin2.SetInterrupt(machine.PinFalling, handleButtonEdge)
}

// handleButtonEdge runs in interrupt context. It only maps the line
// to a logical side and hands off; debounce and arbitration happen in
// the intake and controller.
func handleButtonEdge(pin machine.Pin) {
	side := core.Side1
	if pin == buttonPin2 {
		side = core.Side2
	}
	buttonIntake.HandleEdge(side)
}
