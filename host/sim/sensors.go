package sim

import (
	"sync"

	"aircon/core"
)

// Script is a sequence of readings served one per call; the last one repeats.
// Errors at the same index are returned instead of the value.
type Script[T any] struct {
	mu     sync.Mutex
	values []T
	errs   map[int]error
	next   int

	// Calls counts reads.
	Calls int
}

// NewScript returns a script serving values in order.
func NewScript[T any](values ...T) *Script[T] {
	return &Script[T]{values: values, errs: make(map[int]error)}
}

// FailAt makes the read with index i (0-based) return err.
func (s *Script[T]) FailAt(i int, err error) *Script[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[i] = err
	return s
}

// Set replaces the remaining readings with values.
func (s *Script[T]) Set(values ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
	s.next = 0
}

func (s *Script[T]) read() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.Calls
	s.Calls++

	var v T
	if len(s.values) > 0 {
		i := s.next
		if i >= len(s.values) {
			i = len(s.values) - 1
		} else {
			s.next++
		}
		v = s.values[i]
	}
	if err, ok := s.errs[idx]; ok {
		var zero T
		return zero, err
	}
	return v, nil
}

// Potentiometer serves scripted setpoint readings.
type Potentiometer struct{ *Script[uint16] }

// SamplePotentiometer implements core.Potentiometer.
func (p Potentiometer) SamplePotentiometer() (uint16, error) { return p.read() }

// LightSensor serves scripted light readings.
type LightSensor struct{ *Script[uint32] }

// ReadLight implements core.LightSensor.
func (l LightSensor) ReadLight() (uint32, error) { return l.read() }

// TempSensor serves scripted temperature readings (tenths of a degree).
type TempSensor struct{ *Script[int32] }

// ReadTemperature implements core.TempSensor.
func (t TempSensor) ReadTemperature() (int32, error) { return t.read() }

// Joystick serves scripted joystick samples.
type Joystick struct{ *Script[core.JoystickMask] }

// ReadJoystick implements core.Joystick.
func (j Joystick) ReadJoystick() (core.JoystickMask, error) { return j.read() }
