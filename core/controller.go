package core

// Config wires the controller to its output backends. Lights, Buzzer
// and Display are required; Strip and Reporter are optional.
type Config struct {
	Lights   LightDriver
	Buzzer   BuzzerDriver
	Display  DisplayDriver
	Strip    StripDriver
	Reporter StatusReporter
}

// Controller owns all mutable signal state: the current phase, its
// countdown, the pending and active crossing sides and the buzzer
// cadence phase. The two asynchronous contexts (tick timer, button
// IRQ) only touch these fields through methods that hold the
// interrupt-masking critical section, so no field is ever observed
// half-updated.
type Controller struct {
	cfg Config

	state     SignalState
	countdown int
	pending   Side // crossing scheduled for the next red phase
	active    Side // side that owns the current red phase, if any
	buzzPhase bool
}

// NewController returns a controller in the boot state: red, full
// countdown, no crossing request.
func NewController(cfg Config) *Controller {
	return &Controller{
		cfg:       cfg,
		state:     StateRed,
		countdown: RedTimeSec,
	}
}

// Start renders the boot state on the lamp and display backends.
// Call once before the tick loop is scheduled.
func (c *Controller) Start() {
	st := disableInterrupts()
	c.cfg.Lights.SetLight(c.state)
	c.showState(c.state)
	restoreInterrupts(st)
}

// RunTick is the 1Hz driver body. Firing order: buzzer cadence first,
// then the state machine, then the countdown display window. The
// cadence and counter must never be skipped; display work may lag.
func (c *Controller) RunTick() {
	st := disableInterrupts()

	if c.state == StateRed {
		c.buzzPhase = !c.buzzPhase
		c.cfg.Buzzer.SetBuzzer(c.buzzPhase)
	} else {
		c.cfg.Buzzer.SetBuzzer(false)
	}

	c.tick()

	// Countdown window: only a pedestrian-owned red phase shows the
	// remaining seconds, and only inside [1, CountdownStart].
	if c.active != SideNone && c.state == StateRed &&
		c.countdown >= 1 && c.countdown <= CountdownStart {
		c.showCountdown(c.countdown)
	}

	snap := c.snapshotLocked()
	restoreInterrupts(st)

	// Telemetry stays off the critical path; the serial write may
	// take longer than a display primitive.
	if c.cfg.Reporter != nil {
		c.cfg.Reporter.ReportStatus(snap)
	}
}

// tick advances the countdown and performs the phase transition when
// it expires. Caller must hold the critical section.
func (c *Controller) tick() {
	if c.countdown > 0 {
		c.countdown--
	}
	if c.countdown != 0 {
		return
	}

	tr := transitions[c.state]
	c.state = tr.next
	c.countdown = tr.duration

	switch c.state {
	case StateGreen:
		// Red is over: both request slots are consumed.
		c.active = SideNone
		c.pending = SideNone
		if c.cfg.Strip != nil {
			c.cfg.Strip.ClearCrossing()
		}
	case StateRed:
		// A request made during green/yellow now owns this red phase.
		if c.pending != SideNone {
			c.active = c.pending
			c.pending = SideNone
			if c.cfg.Strip != nil {
				c.cfg.Strip.ShowCrossing(c.active)
			}
		}
	}

	c.cfg.Lights.SetLight(c.state)
	c.showState(c.state)
}

// ForceResetToRed restarts the red phase for a pedestrian press while
// the signal is already red. The countdown returns to the full red
// duration and the newest presser takes over the countdown display,
// regardless of any earlier owner. Safe to call from interrupt
// context; a no-op outside red.
func (c *Controller) ForceResetToRed(side Side) {
	st := disableInterrupts()
	c.forceResetToRed(side)
	restoreInterrupts(st)
}

func (c *Controller) forceResetToRed(side Side) {
	if c.state != StateRed {
		return
	}
	c.countdown = RedTimeSec
	c.active = side
	if c.cfg.Strip != nil {
		c.cfg.Strip.ShowCrossing(side)
	}
	// Refresh outside the normal tick so the restart is visible at once.
	c.showState(StateRed)
}

// Snapshot returns a consistent copy of the controller state.
func (c *Controller) Snapshot() Snapshot {
	st := disableInterrupts()
	snap := c.snapshotLocked()
	restoreInterrupts(st)
	return snap
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:     c.state,
		Countdown: c.countdown,
		Pending:   c.pending,
		Active:    c.active,
		Buzzer:    c.state == StateRed && c.buzzPhase,
	}
}
