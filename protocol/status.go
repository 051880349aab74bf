// Package protocol frames the controller status reports the firmware
// emits over USB CDC once per tick.
//
// Frame layout:
//
//	sync (0x7E) | payload length | payload | crc16 hi | crc16 lo
//
// The CRC covers the payload only. A status payload is:
//
//	version | state | countdown | pending | active | flags
package protocol

import "errors"

const (
	// FrameSync marks the start of every frame.
	FrameSync = 0x7E

	frameOverhead = 4 // sync + length + crc16

	// StatusVersion is the current payload version byte.
	StatusVersion = 1

	statusPayloadLen = 6

	// StatusFrameLen is the full wire size of a status frame.
	StatusFrameLen = statusPayloadLen + frameOverhead
)

// Signal states on the wire.
const (
	StateRed uint8 = iota
	StateGreen
	StateYellow
)

// Flag bits in the last payload byte.
const (
	flagBuzzer = 1 << 0
)

// Status is one decoded controller report. Pending and Active use
// 0 for none, 1 and 2 for the crossing sides.
type Status struct {
	State     uint8
	Countdown uint8
	Pending   uint8
	Active    uint8
	Buzzer    bool
}

var (
	// ErrNoSync means no sync byte was found in the input.
	ErrNoSync = errors.New("protocol: no sync byte")

	// ErrShortFrame means a frame started but is not complete yet.
	ErrShortFrame = errors.New("protocol: truncated frame")

	// ErrBadFrame means a framing field or the CRC was invalid.
	ErrBadFrame = errors.New("protocol: invalid frame")
)

// EncodeStatus appends one framed status report to dst and returns
// the extended slice. Allocation-free when dst has capacity.
func EncodeStatus(dst []byte, s Status) []byte {
	var flags uint8
	if s.Buzzer {
		flags |= flagBuzzer
	}
	payload := [statusPayloadLen]byte{
		StatusVersion, s.State, s.Countdown, s.Pending, s.Active, flags,
	}

	dst = append(dst, FrameSync, statusPayloadLen)
	dst = append(dst, payload[:]...)
	crc := CRC16(payload[:])
	return append(dst, byte(crc>>8), byte(crc))
}

// DecodeStatus parses the first complete frame in buf. It returns the
// decoded status and the number of bytes consumed; the caller drops
// the consumed prefix and retries with more data.
//
// Garbage before the sync byte is consumed. On ErrShortFrame nothing
// past the sync byte is consumed. On ErrBadFrame the bad sync byte is
// consumed so the stream resynchronizes on the next one.
func DecodeStatus(buf []byte) (Status, int, error) {
	start := -1
	for i, b := range buf {
		if b == FrameSync {
			start = i
			break
		}
	}
	if start < 0 {
		return Status{}, len(buf), ErrNoSync
	}

	rest := buf[start:]
	if len(rest) < 2 {
		return Status{}, start, ErrShortFrame
	}
	plen := int(rest[1])
	if plen != statusPayloadLen {
		return Status{}, start + 1, ErrBadFrame
	}
	if len(rest) < plen+frameOverhead {
		return Status{}, start, ErrShortFrame
	}

	payload := rest[2 : 2+plen]
	wireCRC := uint16(rest[2+plen])<<8 | uint16(rest[2+plen+1])
	if CRC16(payload) != wireCRC {
		return Status{}, start + 1, ErrBadFrame
	}
	if payload[0] != StatusVersion {
		return Status{}, start + 1, ErrBadFrame
	}
	if payload[1] > StateYellow || payload[3] > 2 || payload[4] > 2 {
		return Status{}, start + 1, ErrBadFrame
	}

	s := Status{
		State:     payload[1],
		Countdown: payload[2],
		Pending:   payload[3],
		Active:    payload[4],
		Buzzer:    payload[5]&flagBuzzer != 0,
	}
	return s, start + plen + frameOverhead, nil
}

// StateName returns the display name of a wire state value.
func StateName(state uint8) string {
	switch state {
	case StateRed:
		return "RED"
	case StateGreen:
		return "GREEN"
	case StateYellow:
		return "YELLOW"
	}
	return "UNKNOWN"
}
