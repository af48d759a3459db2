// Package sim provides a simulated board so the control loop runs on a
// workstation: a manual millisecond clock, scripted sensors and recording
// actuators.
package sim

import (
	"sync/atomic"
	"time"
)

// Clock is a simulated millisecond counter. DelayMillis advances it instantly,
// so cycles paced by it take no wall-clock time.
type Clock struct {
	now atomic.Uint32

	// Slept is the total of all delays requested.
	Slept atomic.Uint64
}

// NewClock returns a clock starting at start.
func NewClock(start uint32) *Clock {
	c := &Clock{}
	c.now.Store(start)
	return c
}

// NowMillis implements core.Clock.
func (c *Clock) NowMillis() uint32 {
	return c.now.Load()
}

// Advance moves the clock forward by ms, wrapping at 2^32.
func (c *Clock) Advance(ms uint32) {
	c.now.Add(ms)
}

// DelayMillis implements core.Sleeper.
func (c *Clock) DelayMillis(ms uint32) {
	c.Slept.Add(uint64(ms))
	c.Advance(ms)
}

// WallSleeper paces the simulated loop in real time while keeping a Clock in step.
type WallSleeper struct {
	Clock *Clock
}

// DelayMillis implements core.Sleeper.
func (w WallSleeper) DelayMillis(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
	w.Clock.DelayMillis(ms)
}
