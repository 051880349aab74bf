package core

// DisplayDriver is the abstract text display surface. Board targets
// back it with an OLED; the simulator backs it with the console.
// Both primitives are expected to be prompt and non-blocking.
type DisplayDriver interface {
	// Clear blanks the whole display.
	Clear()

	// DrawText draws a single line of text at the given pixel position.
	DrawText(x, y int16, s string)
}

// Display coordinates, chosen for a 128x64 panel.
const (
	stateTextX, stateTextY = 8, 24
	countdownX, countdownY = 60, 24
	noticeX, noticeY       = 0, 24
)

func (c *Controller) showState(s SignalState) {
	d := c.cfg.Display
	d.Clear()
	d.DrawText(stateTextX, stateTextY, "Signal: "+s.String())
}

func (c *Controller) showCountdown(n int) {
	d := c.cfg.Display
	d.Clear()
	d.DrawText(countdownX, countdownY, itoa(n))
}

func (c *Controller) showPendingNotice() {
	d := c.cfg.Display
	d.Clear()
	d.DrawText(noticeX, noticeY, "Cross request")
}
