//go:build !tinygo

package core

import "sync"

// On the host a mutex stands in for masking the tick interrupt, so tests that
// drive the tick from a goroutine see the same exclusion as the firmware.
var hostIRQ sync.Mutex

type irqState struct{}

func disableInterrupts() irqState {
	hostIRQ.Lock()
	return irqState{}
}

func restoreInterrupts(irqState) {
	hostIRQ.Unlock()
}
