package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event type codes
const (
	EvtModeChange    = 1 // Display mode changed (Value = new mode)
	EvtSensorTimeout = 2 // Conversion timed out (Value = sensor id)
	EvtSensorFault   = 3 // Reading out of range (Value = sensor id)
	EvtInitFault     = 4 // Initialization fault, about to halt
	EvtLedChange     = 5 // LED mask pushed (Value = mask)
)

// Sensor ids used in sensor events
const (
	SensorPotentiometer = 1
	SensorLight         = 2
	SensorTemperature   = 3
	SensorJoystick      = 4
)

// Event captures a notable control-loop event for post-mortem analysis
type Event struct {
	Type  uint8
	Ticks uint32
	Value uint32
}

const EventRingSize = 32 // Keep last 32 events for post-mortem

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether DebugPrintln output is active
	debugEnabled bool

	eventRing     [EventRingSize]Event
	eventRingHead uint8
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	if writer == nil {
		writer = func(string) {}
	}
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled {
		debugPrintln(msg)
	}
}

// RecordEvent stores an event in the ring, overwriting the oldest one.
// The ring is shared with the halt path, so updates run with interrupts masked.
func RecordEvent(eventType uint8, ticks, value uint32) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	idx := eventRingHead
	eventRing[idx] = Event{Type: eventType, Ticks: ticks, Value: value}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first.
func Events() []Event {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	out := make([]Event, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.Type == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// DumpEvents writes the event ring through the debug writer regardless of
// whether debug output is enabled. Called on halt.
func DumpEvents() {
	debugPrintln("[EVENTS] === Event Ring Dump ===")
	for _, evt := range Events() {
		var name string
		switch evt.Type {
		case EvtModeChange:
			name = "MODE"
		case EvtSensorTimeout:
			name = "SENSOR_TIMEOUT"
		case EvtSensorFault:
			name = "SENSOR_FAULT"
		case EvtInitFault:
			name = "INIT_FAULT"
		case EvtLedChange:
			name = "LEDS"
		default:
			name = "UNKNOWN"
		}
		debugPrintln("[EVENTS] " + name +
			" ticks=" + utoa(evt.Ticks) +
			" value=" + utoa(evt.Value))
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEvents empties the event ring
func ClearEvents() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
}
