// Package sim runs the crossing controller against console backends,
// so the full control logic can be exercised without the board.
package sim

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"crosswalk/core"
)

// resolution of the wall-clock to core-timebase sync.
const clockStep = 10 * time.Millisecond

// Run drives the controller from the wall clock until input reaches
// EOF. Lines "1" and "2" on in press the crossing buttons.
//
// Tick dispatch and button edges are serialized on one goroutine;
// that stands in for the interrupt masking the firmware build uses.
func Run(in io.Reader, out io.Writer) error {
	ctrl := core.NewController(core.Config{
		Lights:  &consoleLights{out: out},
		Buzzer:  &consoleBuzzer{out: out},
		Display: &consoleDisplay{out: out},
		Strip:   &consoleStrip{out: out},
	})
	intake := core.NewButtonIntake(ctrl, core.DefaultDebounceTicks)

	start := time.Now()
	syncClock := func() {
		core.SetTime(uint32(time.Since(start).Microseconds()))
	}

	syncClock()
	ctrl.Start()
	core.StartTickLoop(ctrl)

	presses := make(chan core.Side, 4)
	done := make(chan struct{})
	go readPresses(in, presses, done)

	ticker := time.NewTicker(clockStep)
	defer ticker.Stop()

	fmt.Fprintln(out, "crosswalk simulator: type 1 or 2 and press enter to request a crossing")

	for {
		select {
		case <-ticker.C:
			syncClock()
			core.ProcessTimers()
		case side := <-presses:
			syncClock()
			intake.HandleEdge(side)
		case <-done:
			return nil
		}
	}
}

func readPresses(in io.Reader, presses chan<- core.Side, done chan<- struct{}) {
	defer close(done)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			presses <- core.Side1
		case "2":
			presses <- core.Side2
		}
	}
}

type consoleLights struct {
	out io.Writer
}

func (l *consoleLights) SetLight(state core.SignalState) {
	fmt.Fprintf(l.out, "[lamp]   %s\n", state)
}

type consoleBuzzer struct {
	out  io.Writer
	last bool
}

// SetBuzzer prints only on change; the 1Hz cadence would otherwise
// dominate the output.
func (b *consoleBuzzer) SetBuzzer(on bool) {
	if on == b.last {
		return
	}
	b.last = on
	if on {
		fmt.Fprintln(b.out, "[buzzer] on")
	} else {
		fmt.Fprintln(b.out, "[buzzer] off")
	}
}

type consoleDisplay struct {
	out io.Writer
}

func (d *consoleDisplay) Clear() {}

func (d *consoleDisplay) DrawText(x, y int16, s string) {
	fmt.Fprintf(d.out, "[oled]   %s\n", s)
}

type consoleStrip struct {
	out io.Writer
}

func (s *consoleStrip) ShowCrossing(side core.Side) {
	fmt.Fprintf(s.out, "[matrix] crossing side %d\n", side)
}

func (s *consoleStrip) ClearCrossing() {
	fmt.Fprintln(s.out, "[matrix] clear")
}
