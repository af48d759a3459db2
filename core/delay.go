package core

// Clock reports elapsed milliseconds. The count is monotonically non-decreasing
// and wraps at 2^32.
type Clock interface {
	NowMillis() uint32
}

// Sleeper blocks the caller for a number of milliseconds.
// There is no cancellation: a started delay always runs to completion.
type Sleeper interface {
	DelayMillis(ms uint32)
}

// TickDelay busy-waits on a Clock. Its countdown restarts on every call, so one
// value can be reused for every pacing delay in the loop.
type TickDelay struct {
	Clock Clock

	// Idle, if set, runs on every poll of the clock (e.g. a WFI on hardware).
	Idle func()
}

// DelayMillis spins until ms ticks have elapsed. Elapsed time is computed by
// unsigned subtraction so a counter wrap during the wait is harmless.
func (d *TickDelay) DelayMillis(ms uint32) {
	if ms == 0 {
		return
	}
	start := d.Clock.NowMillis()
	for d.Clock.NowMillis()-start < ms {
		if d.Idle != nil {
			d.Idle()
		}
	}
}
