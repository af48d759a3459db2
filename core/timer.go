package core

// TickRateHz is the frequency of the periodic tick interrupt: one tick per millisecond.
const TickRateHz = 1000

var systemTicks uint32

// TickHandler advances the millisecond counter by one.
// Targets call it from the periodic hardware interrupt and nowhere else.
func TickHandler() {
	incSystemTicks()
}

// GetTicks returns the current millisecond count. It wraps at 2^32.
func GetTicks() uint32 {
	return getSystemTicks()
}

// SetTicks overwrites the millisecond counter (for testing/hardware integration)
func SetTicks(ticks uint32) {
	setSystemTicks(ticks)
}

// TickClock is the Clock backed by the interrupt-driven tick counter.
type TickClock struct{}

// NowMillis implements Clock.
func (TickClock) NowMillis() uint32 {
	return GetTicks()
}

// TimerInit configures the periodic tick source through setup and resets the counter.
// A nil setup or a setup error is an InitializationFault: nothing downstream is safe
// without a running tick, so Halt is called and TimerInit never returns.
func TimerInit(setup func(rateHz uint32) error) {
	SetTicks(0)
	if setup == nil {
		Halt("tick source missing")
		return
	}
	if err := setup(TickRateHz); err != nil {
		Halt("tick source: " + err.Error())
	}
}
