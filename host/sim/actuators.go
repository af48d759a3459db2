package sim

import (
	"sync"

	"aircon/core"
)

// Motor records every duty written to it.
type Motor struct {
	mu     sync.Mutex
	period uint32
	duties []uint32
}

// NewMotor returns a motor with the given PWM period.
func NewMotor(periodTicks uint32) *Motor {
	return &Motor{period: periodTicks}
}

// PeriodTicks implements core.Motor.
func (m *Motor) PeriodTicks() uint32 { return m.period }

// SetMotorDuty implements core.Motor.
func (m *Motor) SetMotorDuty(ticks uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ticks > m.period {
		return core.ErrOutOfRange
	}
	m.duties = append(m.duties, ticks)
	return nil
}

// Duties returns every duty written so far.
func (m *Motor) Duties() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uint32(nil), m.duties...)
}

// Duty returns the duty currently applied.
func (m *Motor) Duty() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.duties) == 0 {
		return 0
	}
	return m.duties[len(m.duties)-1]
}

// Leds records every mask pushed to the LEDs.
type Leds struct {
	mu     sync.Mutex
	pushes []core.LedMask
}

// SetLeds implements core.LedDriver.
func (l *Leds) SetLeds(mask core.LedMask) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pushes = append(l.pushes, mask)
	return nil
}

// Pushes returns every mask pushed so far.
func (l *Leds) Pushes() []core.LedMask {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.LedMask(nil), l.pushes...)
}

// Mask returns the physical LED state.
func (l *Leds) Mask() core.LedMask {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.pushes) == 0 {
		return 0
	}
	return l.pushes[len(l.pushes)-1]
}
