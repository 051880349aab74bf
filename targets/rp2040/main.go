//go:build rp2040

package main

import (
	"time"

	"crosswalk/core"
)

func main() {
	InitClock()

	gpio := NewRPGPIODriver()
	core.SetGPIODriver(gpio)

	lights, err := core.NewPinLights(gpio, ledRedPin, ledGreenPin)
	if err != nil {
		return
	}
	buzzer, err := core.NewPinBuzzer(gpio, buzzerPinA, buzzerPinB)
	if err != nil {
		return
	}
	display, err := NewOLEDDisplay()
	if err != nil {
		return
	}

	ctrl := core.NewController(core.Config{
		Lights:   lights,
		Buzzer:   buzzer,
		Display:  display,
		Strip:    NewMatrixStrip(neoPixelPin),
		Reporter: NewSerialReporter(),
	})

	if err := configureButtons(gpio, core.NewButtonIntake(ctrl, core.DefaultDebounceTicks)); err != nil {
		return
	}

	// Boot state: red lamp and state text, then the 1Hz driver.
	ctrl.Start()
	core.StartTickLoop(ctrl)

	// Main loop: sync the core timebase with the hardware timer and
	// dispatch due timers. Button edges arrive via GPIO IRQ.
	for {
		UpdateSystemTime()
		core.ProcessTimers()
		time.Sleep(time.Millisecond)
	}
}
