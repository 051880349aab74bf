package core

// Snapshot is a consistent copy of the controller state, taken inside
// the critical section. Used for telemetry and tests.
type Snapshot struct {
	State     SignalState
	Countdown int
	Pending   Side
	Active    Side
	Buzzer    bool
}

// StatusReporter receives one snapshot per tick. Implementations run
// outside the critical section and should not block for long; a slow
// reporter delays the next display refresh but never the counter.
type StatusReporter interface {
	ReportStatus(s Snapshot)
}
