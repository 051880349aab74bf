// crosswalk-monitor tails the status frames the controller firmware
// emits over USB CDC and prints them as human-readable lines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"crosswalk/host/serial"
	"crosswalk/protocol"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	verbose = flag.Bool("verbose", false, "Also report framing errors")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Monitoring %s (ctrl-c to stop)\n", *device)

	if err := monitor(port, os.Stdout, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// monitor reads the port until EOF, decoding and printing every
// status frame. Partial frames are kept across reads.
func monitor(port io.Reader, out io.Writer, verbose bool) error {
	var pending []byte
	chunk := make([]byte, 256)

	for {
		n, err := port.Read(chunk)
		if n > 0 {
			pending = append(pending, chunk[:n]...)
			pending = drainFrames(pending, out, verbose)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// drainFrames decodes every complete frame in buf and returns the
// undecoded tail.
func drainFrames(buf []byte, out io.Writer, verbose bool) []byte {
	for len(buf) > 0 {
		status, consumed, err := protocol.DecodeStatus(buf)
		buf = buf[consumed:]
		switch {
		case err == nil:
			printStatus(out, status)
		case errors.Is(err, protocol.ErrShortFrame):
			return buf
		case errors.Is(err, protocol.ErrNoSync):
			return buf
		default:
			if verbose {
				fmt.Fprintf(out, "! %v\n", err)
			}
		}
	}
	return buf
}

func printStatus(out io.Writer, s protocol.Status) {
	fmt.Fprintf(out, "[%s] %-6s countdown=%-2d pending=%s active=%s buzzer=%s\n",
		time.Now().Format("15:04:05"),
		protocol.StateName(s.State),
		s.Countdown,
		sideName(s.Pending),
		sideName(s.Active),
		onOff(s.Buzzer))
}

func sideName(side uint8) string {
	switch side {
	case 1:
		return "side1"
	case 2:
		return "side2"
	}
	return "-"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
