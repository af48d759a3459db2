//go:build !tinygo

package core

import "sync/atomic"

// The host build has real goroutines (the simulator runs the tick from one),
// so the counter is accessed atomically here as well.

func getSystemTicks() uint32 {
	return atomic.LoadUint32(&systemTicks)
}

func setSystemTicks(ticks uint32) {
	atomic.StoreUint32(&systemTicks, ticks)
}

func incSystemTicks() {
	atomic.AddUint32(&systemTicks, 1)
}
