package core

import "errors"

var (
	// ErrInitialization reports a required peripheral that could not be configured.
	ErrInitialization = errors.New("peripheral initialization failed")

	// ErrSensorTimeout reports a conversion that did not complete within its retry budget.
	ErrSensorTimeout = errors.New("sensor conversion timed out")

	// ErrSensorFault reports a reading outside the sensor's documented range.
	ErrSensorFault = errors.New("sensor reading out of range")

	// ErrOutOfRange reports an argument outside what the callee supports.
	ErrOutOfRange = errors.New("argument out of range")
)

// HaltHandler is called once an unrecoverable fault has been reported.
// It must not return on hardware.
type HaltHandler func(reason string)

var haltHandler HaltHandler = spinForever

// SetHaltHandler replaces the halt behaviour. Targets may install a watchdog
// reset; tests install a handler that panics so the halt can be observed.
func SetHaltHandler(h HaltHandler) {
	if h == nil {
		h = spinForever
	}
	haltHandler = h
}

// Halt records an InitializationFault, dumps the event ring and stops.
func Halt(reason string) {
	RecordEvent(EvtInitFault, GetTicks(), 0)
	debugPrintln("[FAULT] " + reason)
	DumpEvents()
	haltHandler(reason)
}

func spinForever(string) {
	for {
	}
}
