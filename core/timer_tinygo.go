//go:build tinygo

package core

// getSystemTicks returns the current system ticks.
// A 32-bit aligned load is a single instruction on Cortex-M, so the
// interrupt can never be observed half-way through an update.
func getSystemTicks() uint32 {
	return systemTicks
}

// setSystemTicks sets the system ticks with the tick interrupt masked
func setSystemTicks(ticks uint32) {
	state := disableInterrupts()
	systemTicks = ticks
	restoreInterrupts(state)
}

// incSystemTicks runs in interrupt context only
func incSystemTicks() {
	systemTicks++
}
