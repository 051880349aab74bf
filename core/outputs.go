package core

// LightDriver drives the signal head lamps.
type LightDriver interface {
	SetLight(state SignalState)
}

// BuzzerDriver drives the audible accessibility cue.
type BuzzerDriver interface {
	SetBuzzer(on bool)
}

// StripDriver renders the crossing-side indicator on an LED strip or
// matrix. Optional backend.
type StripDriver interface {
	// ShowCrossing lights the indicator for the side that owns the
	// current red phase.
	ShowCrossing(side Side)

	// ClearCrossing blanks the indicator.
	ClearCrossing()
}

// PinLights implements LightDriver on the two lamp GPIO lines of an
// RGB signal head. Yellow drives both lines; the blue channel is not
// used.
type PinLights struct {
	gpio  GPIODriver
	red   GPIOPin
	green GPIOPin
}

// NewPinLights configures both lamp pins as outputs.
func NewPinLights(gpio GPIODriver, red, green GPIOPin) (*PinLights, error) {
	for _, p := range []GPIOPin{red, green} {
		if err := gpio.ConfigureOutput(p); err != nil {
			return nil, err
		}
	}
	return &PinLights{gpio: gpio, red: red, green: green}, nil
}

func (l *PinLights) SetLight(state SignalState) {
	_ = l.gpio.SetPin(l.red, state == StateRed || state == StateYellow)
	_ = l.gpio.SetPin(l.green, state == StateGreen || state == StateYellow)
}

// PinBuzzer implements BuzzerDriver on one or more GPIO lines. The
// reference board carries a buzzer on each side of the crossing; both
// follow the same cadence.
type PinBuzzer struct {
	gpio GPIODriver
	pins []GPIOPin
}

// NewPinBuzzer configures the buzzer pins as outputs, initially low.
func NewPinBuzzer(gpio GPIODriver, pins ...GPIOPin) (*PinBuzzer, error) {
	for _, p := range pins {
		if err := gpio.ConfigureOutput(p); err != nil {
			return nil, err
		}
		if err := gpio.SetPin(p, false); err != nil {
			return nil, err
		}
	}
	return &PinBuzzer{gpio: gpio, pins: pins}, nil
}

func (b *PinBuzzer) SetBuzzer(on bool) {
	for _, p := range b.pins {
		_ = b.gpio.SetPin(p, on)
	}
}
