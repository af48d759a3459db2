//go:build rp2040 || rp2350

package board

import (
	"device/arm"
	"machine"

	"aircon/core"
)

// startSysTick runs SysTick at rateHz from the core clock.
func startSysTick(rateHz uint32) error {
	return arm.SetupSystemTimer(machine.CPUFrequency() / rateHz)
}

//export SysTick_Handler
func sysTickHandler() {
	core.TickHandler()
}

// waitForInterrupt sleeps the core until the next interrupt, usually the next tick.
func waitForInterrupt() {
	arm.Asm("wfi")
}
