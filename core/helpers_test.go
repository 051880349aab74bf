package core

// Fake output backends shared by the controller tests.

type fakeLights struct {
	states []SignalState
}

func (f *fakeLights) SetLight(s SignalState) {
	f.states = append(f.states, s)
}

type fakeBuzzer struct {
	states []bool
}

func (f *fakeBuzzer) SetBuzzer(on bool) {
	f.states = append(f.states, on)
}

type fakeDisplay struct {
	clears int
	texts  []string
}

func (f *fakeDisplay) Clear() {
	f.clears++
}

func (f *fakeDisplay) DrawText(x, y int16, s string) {
	f.texts = append(f.texts, s)
}

type fakeStrip struct {
	shown  []Side
	clears int
}

func (f *fakeStrip) ShowCrossing(side Side) {
	f.shown = append(f.shown, side)
}

func (f *fakeStrip) ClearCrossing() {
	f.clears++
}

type fakeReporter struct {
	snaps []Snapshot
}

func (f *fakeReporter) ReportStatus(s Snapshot) {
	f.snaps = append(f.snaps, s)
}

type fakes struct {
	lights   *fakeLights
	buzzer   *fakeBuzzer
	display  *fakeDisplay
	strip    *fakeStrip
	reporter *fakeReporter
}

func newTestController() (*Controller, *fakes) {
	f := &fakes{
		lights:   &fakeLights{},
		buzzer:   &fakeBuzzer{},
		display:  &fakeDisplay{},
		strip:    &fakeStrip{},
		reporter: &fakeReporter{},
	}
	ctrl := NewController(Config{
		Lights:   f.lights,
		Buzzer:   f.buzzer,
		Display:  f.display,
		Strip:    f.strip,
		Reporter: f.reporter,
	})
	return ctrl, f
}

func runTicks(c *Controller, n int) {
	for i := 0; i < n; i++ {
		c.RunTick()
	}
}
