// Signal state machine types for the pedestrian crossing controller.
package core

// SignalState is the current phase of the traffic signal.
type SignalState uint8

const (
	StateRed SignalState = iota
	StateGreen
	StateYellow
)

// String returns the display name of the state.
func (s SignalState) String() string {
	switch s {
	case StateRed:
		return "RED"
	case StateGreen:
		return "GREEN"
	case StateYellow:
		return "YELLOW"
	}
	return "UNKNOWN"
}

// Side identifies one side of the crossing. SideNone marks an empty
// pending/active slot.
type Side uint8

const (
	SideNone Side = 0
	Side1    Side = 1
	Side2    Side = 2
)

// Phase durations in seconds. Fixed by design; not runtime-configurable.
const (
	RedTimeSec    = 10
	GreenTimeSec  = 10
	YellowTimeSec = 3

	// CountdownStart is the remaining-seconds threshold below which a
	// pedestrian-owned red phase shows the numeric countdown.
	CountdownStart = 5
)

// transition describes the successor of a state and how long the
// successor dwells. Keeping durations here means each constant appears
// at exactly one call site.
type transition struct {
	next     SignalState
	duration int
}

var transitions = [3]transition{
	StateRed:    {StateGreen, GreenTimeSec},
	StateGreen:  {StateYellow, YellowTimeSec},
	StateYellow: {StateRed, RedTimeSec},
}
