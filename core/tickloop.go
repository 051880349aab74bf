package core

// TickLoop drives the controller at 1Hz through the shared timer list.
type TickLoop struct {
	ctrl  *Controller
	timer Timer
}

// StartTickLoop schedules the periodic tick. The first firing is
// immediate rather than one full period out, so the boot red phase
// starts counting right away.
func StartTickLoop(c *Controller) *TickLoop {
	l := &TickLoop{ctrl: c}
	l.timer.WakeTime = GetTime()
	l.timer.Handler = l.fire
	ScheduleTimer(&l.timer)
	return l
}

func (l *TickLoop) fire(t *Timer) TimerResult {
	l.ctrl.RunTick()

	// Reschedule from the current time: a firing starved by
	// higher-priority work lags rather than replaying missed ticks.
	t.WakeTime = GetTime() + TicksPerSecond
	return TimerReschedule
}
