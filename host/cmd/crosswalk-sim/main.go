// crosswalk-sim runs the signal controller on the desktop with
// console backends. Useful for demoing the crossing logic and the
// tie-break rules without hardware.
package main

import (
	"fmt"
	"os"

	"crosswalk/host/sim"
)

func main() {
	if err := sim.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
