package core

// OnButtonEdge registers one debounced falling edge from a crossing
// button. In red every valid press restarts the phase for the newest
// presser. In green or yellow the press books the next red phase,
// with the side-1 tie-break: an empty slot goes to whoever presses
// first, a slot held by side 2 can still be upgraded to side 1, but a
// slot held by side 1 is never downgraded. A press during green also
// truncates the phase so the next tick enters yellow.
//
// The asymmetric tie-break is intentional: side 1 is the designated
// priority lane.
func (c *Controller) OnButtonEdge(side Side) {
	if side != Side1 && side != Side2 {
		return
	}

	st := disableInterrupts()
	defer restoreInterrupts(st)

	if c.state == StateRed {
		c.forceResetToRed(side)
		return
	}

	if c.pending == SideNone || side == Side1 {
		c.pending = side
	}
	if c.state == StateGreen {
		c.countdown = 0
	}
	c.showPendingNotice()
}
