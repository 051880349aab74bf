package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootState(t *testing.T) {
	ctrl, f := newTestController()
	ctrl.Start()

	snap := ctrl.Snapshot()
	assert.Equal(t, StateRed, snap.State)
	assert.Equal(t, RedTimeSec, snap.Countdown)
	assert.Equal(t, SideNone, snap.Pending)
	assert.Equal(t, SideNone, snap.Active)

	require.Len(t, f.lights.states, 1)
	assert.Equal(t, StateRed, f.lights.states[0])
	assert.Equal(t, []string{"Signal: RED"}, f.display.texts)
}

func TestSignalCycleOrder(t *testing.T) {
	ctrl, f := newTestController()
	ctrl.Start()

	// Two full cycles: red 10s, green 10s, yellow 3s.
	runTicks(ctrl, 2*(RedTimeSec+GreenTimeSec+YellowTimeSec))

	want := []SignalState{
		StateRed, // boot
		StateGreen, StateYellow, StateRed,
		StateGreen, StateYellow, StateRed,
	}
	assert.Equal(t, want, f.lights.states)
}

func TestPhaseDurations(t *testing.T) {
	ctrl, _ := newTestController()
	ctrl.Start()

	runTicks(ctrl, RedTimeSec)
	snap := ctrl.Snapshot()
	assert.Equal(t, StateGreen, snap.State)
	assert.Equal(t, GreenTimeSec, snap.Countdown)

	runTicks(ctrl, GreenTimeSec)
	snap = ctrl.Snapshot()
	assert.Equal(t, StateYellow, snap.State)
	assert.Equal(t, YellowTimeSec, snap.Countdown)

	runTicks(ctrl, YellowTimeSec)
	snap = ctrl.Snapshot()
	assert.Equal(t, StateRed, snap.State)
	assert.Equal(t, RedTimeSec, snap.Countdown)
}

func TestBuzzerCadence(t *testing.T) {
	ctrl, f := newTestController()
	ctrl.Start()

	runTicks(ctrl, RedTimeSec+GreenTimeSec+YellowTimeSec+1)

	// 1Hz duty throughout red: the cadence output alternates,
	// starting high.
	for i := 0; i < RedTimeSec; i++ {
		assert.Equal(t, i%2 == 0, f.buzzer.states[i], "red tick %d", i+1)
	}
	// Silent for the whole of green and yellow.
	for i := RedTimeSec; i < RedTimeSec+GreenTimeSec+YellowTimeSec; i++ {
		assert.False(t, f.buzzer.states[i], "green/yellow tick %d", i+1)
	}
	// Cadence resumes on the next red, independent of how red was
	// entered.
	assert.True(t, f.buzzer.states[RedTimeSec+GreenTimeSec+YellowTimeSec])
}

func TestTickPairSingleDecrementEach(t *testing.T) {
	ctrl, _ := newTestController()
	ctrl.Start()

	ctrl.RunTick()
	ctrl.RunTick()

	// Back-to-back firings decrement exactly once each; no
	// re-entrancy artifacts.
	assert.Equal(t, RedTimeSec-2, ctrl.Snapshot().Countdown)
}

func TestRedPressRestartsFullRed(t *testing.T) {
	ctrl, f := newTestController()
	ctrl.Start()
	runTicks(ctrl, 4)
	require.Equal(t, RedTimeSec-4, ctrl.Snapshot().Countdown)

	ctrl.OnButtonEdge(Side1)

	snap := ctrl.Snapshot()
	assert.Equal(t, StateRed, snap.State)
	assert.Equal(t, RedTimeSec, snap.Countdown)
	assert.Equal(t, Side1, snap.Active)
	// Immediate refresh outside the tick.
	assert.Equal(t, "Signal: RED", f.display.texts[len(f.display.texts)-1])
	assert.Equal(t, []Side{Side1}, f.strip.shown)
}

func TestRedPressRebindsToNewestPresser(t *testing.T) {
	ctrl, _ := newTestController()
	ctrl.Start()

	ctrl.OnButtonEdge(Side2)
	assert.Equal(t, Side2, ctrl.Snapshot().Active)

	// No tie-break in red: the newest press always takes over, even
	// side1 -> side2.
	ctrl.OnButtonEdge(Side1)
	assert.Equal(t, Side1, ctrl.Snapshot().Active)
	assert.Equal(t, RedTimeSec, ctrl.Snapshot().Countdown)

	ctrl.OnButtonEdge(Side2)
	assert.Equal(t, Side2, ctrl.Snapshot().Active)
}

func TestGreenPressTruncatesPhase(t *testing.T) {
	ctrl, f := newTestController()
	ctrl.Start()
	runTicks(ctrl, RedTimeSec)
	require.Equal(t, StateGreen, ctrl.Snapshot().State)

	ctrl.OnButtonEdge(Side2)

	snap := ctrl.Snapshot()
	assert.Equal(t, Side2, snap.Pending)
	assert.Equal(t, 0, snap.Countdown)
	assert.Equal(t, "Cross request", f.display.texts[len(f.display.texts)-1])

	// Truncated green enters yellow on the very next tick.
	ctrl.RunTick()
	assert.Equal(t, StateYellow, ctrl.Snapshot().State)
}

func TestGreenTieBreakUpgradesToSide1(t *testing.T) {
	ctrl, _ := newTestController()
	ctrl.Start()
	runTicks(ctrl, RedTimeSec)

	ctrl.OnButtonEdge(Side2)
	ctrl.OnButtonEdge(Side1)

	snap := ctrl.Snapshot()
	assert.Equal(t, Side1, snap.Pending)
	assert.Equal(t, 0, snap.Countdown)
}

func TestGreenTieBreakNeverDowngradesSide1(t *testing.T) {
	ctrl, _ := newTestController()
	ctrl.Start()
	runTicks(ctrl, RedTimeSec)

	ctrl.OnButtonEdge(Side1)
	ctrl.OnButtonEdge(Side2)

	assert.Equal(t, Side1, ctrl.Snapshot().Pending)
}

func TestYellowPressSchedulesNextRed(t *testing.T) {
	ctrl, f := newTestController()
	ctrl.Start()
	runTicks(ctrl, RedTimeSec+GreenTimeSec)
	require.Equal(t, StateYellow, ctrl.Snapshot().State)

	ctrl.OnButtonEdge(Side2)

	snap := ctrl.Snapshot()
	assert.Equal(t, Side2, snap.Pending)
	// Yellow is never truncated.
	assert.Equal(t, YellowTimeSec, snap.Countdown)

	runTicks(ctrl, YellowTimeSec)
	snap = ctrl.Snapshot()
	assert.Equal(t, StateRed, snap.State)
	assert.Equal(t, Side2, snap.Active)
	assert.Equal(t, SideNone, snap.Pending)
	assert.Equal(t, []Side{Side2}, f.strip.shown)
}

func TestPedestrianCountdownWindow(t *testing.T) {
	ctrl, f := newTestController()
	ctrl.Start()
	ctrl.OnButtonEdge(Side1) // red press: pedestrian owns this phase

	f.display.texts = nil
	runTicks(ctrl, RedTimeSec)

	// Countdown rendered only for the last CountdownStart seconds,
	// then the green transition replaces it.
	var digits []string
	for _, s := range f.display.texts {
		if s[0] >= '0' && s[0] <= '9' {
			digits = append(digits, s)
		}
	}
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, digits)

	snap := ctrl.Snapshot()
	assert.Equal(t, StateGreen, snap.State)
	assert.Equal(t, GreenTimeSec, snap.Countdown)
	assert.Equal(t, SideNone, snap.Active)
	assert.Equal(t, 1, f.strip.clears)
}

func TestCountdownHiddenWithoutRequest(t *testing.T) {
	ctrl, f := newTestController()
	ctrl.Start()

	runTicks(ctrl, RedTimeSec)

	for _, s := range f.display.texts {
		assert.False(t, s[0] >= '0' && s[0] <= '9',
			"unowned red phase must not render a countdown, got %q", s)
	}
}

func TestCrossingConsumedOnGreenEntry(t *testing.T) {
	ctrl, _ := newTestController()
	ctrl.Start()
	runTicks(ctrl, RedTimeSec)
	ctrl.OnButtonEdge(Side1)

	// yellow -> full red -> green
	runTicks(ctrl, 1+YellowTimeSec+RedTimeSec)

	snap := ctrl.Snapshot()
	assert.Equal(t, StateGreen, snap.State)
	assert.Equal(t, SideNone, snap.Active)
	assert.Equal(t, SideNone, snap.Pending)
}

func TestReporterReceivesEveryTick(t *testing.T) {
	ctrl, f := newTestController()
	ctrl.Start()

	runTicks(ctrl, 3)

	require.Len(t, f.reporter.snaps, 3)
	assert.Equal(t, RedTimeSec-1, f.reporter.snaps[0].Countdown)
	assert.Equal(t, RedTimeSec-3, f.reporter.snaps[2].Countdown)
	assert.True(t, f.reporter.snaps[0].Buzzer)
	assert.False(t, f.reporter.snaps[1].Buzzer)
}

func TestForceResetIgnoredOutsideRed(t *testing.T) {
	ctrl, _ := newTestController()
	ctrl.Start()
	runTicks(ctrl, RedTimeSec)
	require.Equal(t, StateGreen, ctrl.Snapshot().State)

	ctrl.ForceResetToRed(Side1)

	snap := ctrl.Snapshot()
	assert.Equal(t, StateGreen, snap.State)
	assert.Equal(t, SideNone, snap.Active)
}
