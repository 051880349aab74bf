package core

// DefaultDebounceTicks is the edge suppression window for a crossing
// button. Tunable; not part of the behavioral contract.
const DefaultDebounceTicks = 200 * (TimerFreq / 1000) // 200ms

// ButtonIntake is the interrupt-side entry point for the two crossing
// buttons. It suppresses edges inside the debounce window of a prior
// accepted edge on the same line and forwards the rest to the
// controller. Each line's fields are only touched from that line's
// IRQ, so no extra locking is needed here.
type ButtonIntake struct {
	ctrl     *Controller
	window   uint32
	lastEdge [2]uint32
	seen     [2]bool
}

// NewButtonIntake binds the intake to a controller. A window of 0
// disables debouncing.
func NewButtonIntake(ctrl *Controller, windowTicks uint32) *ButtonIntake {
	return &ButtonIntake{ctrl: ctrl, window: windowTicks}
}

// HandleEdge processes one falling edge on a button line. The first
// edge on a line is always accepted. Suppressed edges have no
// observable effect.
func (b *ButtonIntake) HandleEdge(side Side) {
	if side != Side1 && side != Side2 {
		return
	}

	i := side - 1
	now := GetTime()
	// Unsigned subtraction keeps the window correct across tick wrap.
	if b.seen[i] && now-b.lastEdge[i] < b.window {
		return
	}
	b.seen[i] = true
	b.lastEdge[i] = now

	b.ctrl.OnButtonEdge(side)
}
