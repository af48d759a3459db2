// Command aircon-host runs the climate controller against a simulated board
// and monitors the telemetry of a real one.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
