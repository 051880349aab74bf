//go:build rp2040

package main

import (
	"machine"

	"crosswalk/core"
	"crosswalk/protocol"
)

// SerialReporter frames one controller snapshot per tick onto the USB
// CDC port for the host monitor. Runs outside the controller's
// critical section.
type SerialReporter struct {
	buf []byte
}

func NewSerialReporter() *SerialReporter {
	return &SerialReporter{buf: make([]byte, 0, protocol.StatusFrameLen)}
}

func (r *SerialReporter) ReportStatus(s core.Snapshot) {
	r.buf = protocol.EncodeStatus(r.buf[:0], protocol.Status{
		State:     uint8(s.State),
		Countdown: uint8(s.Countdown),
		Pending:   uint8(s.Pending),
		Active:    uint8(s.Active),
		Buzzer:    s.Buzzer,
	})
	_, _ = machine.Serial.Write(r.buf)
}
