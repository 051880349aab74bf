//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"

	"crosswalk/core"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x28 // Raw timer low word (no side effects)
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// InitClock initializes the RP2040 hardware timer timebase.
// The RP2040 has a 64-bit microsecond timer at 1MHz; the controller
// only needs the low 32 bits.
func InitClock() {
	core.SetTime(GetHardwareTime())
}

// GetHardwareTime reads the RP2040 hardware timer
// Returns the low 32 bits of the microsecond counter
func GetHardwareTime() uint32 {
	return timerRAWL.Get()
}

// UpdateSystemTime updates the core timer with hardware time
// Called from the main loop before timer dispatch
func UpdateSystemTime() {
	core.SetTime(GetHardwareTime())
}
