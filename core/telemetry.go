package core

import (
	"io"

	"aircon/protocol"
)

// Telemetry flags
const (
	FlagChromeRedraw  = 1 << 0 // mode changed, chrome repainted this cycle
	FlagSensorTimeout = 1 << 1 // a conversion timed out, last good value reused
	FlagSensorFault   = 1 << 2 // a reading was out of range, last good value reused
)

// Telemetry is the state of one control cycle, as sent to the host.
type Telemetry struct {
	Ticks         uint32
	Potentiometer uint16
	Duty          uint32
	Light         uint32
	Mode          DisplayMode
	Temperature   int32
	Joystick      JoystickMask
	Leds          LedMask
	Flags         uint8
}

// TelemetrySink receives one snapshot per cycle.
type TelemetrySink interface {
	Publish(t Telemetry)
}

// EncodeTelemetry writes t as a cycle_state payload.
func EncodeTelemetry(output protocol.OutputBuffer, t Telemetry) {
	protocol.EncodeVLQUint(output, protocol.MsgCycleState)
	protocol.EncodeVLQUint(output, t.Ticks)
	protocol.EncodeVLQUint(output, uint32(t.Potentiometer))
	protocol.EncodeVLQUint(output, t.Duty)
	protocol.EncodeVLQUint(output, t.Light)
	protocol.EncodeVLQUint(output, uint32(t.Mode))
	protocol.EncodeVLQInt(output, t.Temperature)
	protocol.EncodeVLQUint(output, uint32(t.Joystick))
	protocol.EncodeVLQUint(output, uint32(t.Leds))
	protocol.EncodeVLQUint(output, uint32(t.Flags))
}

// DecodeTelemetry parses a cycle_state payload.
func DecodeTelemetry(payload []byte) (Telemetry, error) {
	var t Telemetry
	data := payload

	id, err := protocol.DecodeVLQUint(&data)
	if err != nil {
		return t, err
	}
	if id != protocol.MsgCycleState {
		return t, protocol.ErrBadFrame
	}

	var fields [9]int32
	for i := range fields {
		if fields[i], err = protocol.DecodeVLQInt(&data); err != nil {
			return t, err
		}
	}
	if len(data) != 0 {
		return t, protocol.ErrBadFrame
	}

	t.Ticks = uint32(fields[0])
	t.Potentiometer = uint16(fields[1])
	t.Duty = uint32(fields[2])
	t.Light = uint32(fields[3])
	t.Mode = DisplayMode(fields[4])
	t.Temperature = fields[5]
	t.Joystick = JoystickMask(fields[6])
	t.Leds = LedMask(fields[7])
	t.Flags = uint8(fields[8])
	return t, nil
}

// EncodeFault writes a fault payload carrying reason.
func EncodeFault(output protocol.OutputBuffer, reason string) {
	protocol.EncodeVLQUint(output, protocol.MsgFault)
	protocol.EncodeVLQString(output, reason)
}

// DecodeFault parses a fault payload.
func DecodeFault(payload []byte) (string, error) {
	data := payload
	id, err := protocol.DecodeVLQUint(&data)
	if err != nil {
		return "", err
	}
	if id != protocol.MsgFault {
		return "", protocol.ErrBadFrame
	}
	return protocol.DecodeVLQString(&data)
}

// FrameWriter publishes telemetry as framed messages on w (USB CDC on hardware).
// Write errors and frames too large to encode are counted and otherwise
// ignored: telemetry must never stall the loop.
type FrameWriter struct {
	w      io.Writer
	out    *protocol.FrameScratch
	seq    uint8
	Errors uint32
}

// NewFrameWriter returns a FrameWriter on w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: w, out: protocol.NewFrameScratch()}
}

// Publish implements TelemetrySink.
func (f *FrameWriter) Publish(t Telemetry) {
	f.send(func(output protocol.OutputBuffer) {
		EncodeTelemetry(output, t)
	})
}

// PublishFault sends the fault reason; installed targets call it from their halt handler.
func (f *FrameWriter) PublishFault(reason string) {
	if len(reason) > protocol.MessageLengthMax-16 {
		reason = reason[:protocol.MessageLengthMax-16]
	}
	f.send(func(output protocol.OutputBuffer) {
		EncodeFault(output, reason)
	})
}

func (f *FrameWriter) send(body func(output protocol.OutputBuffer)) {
	f.out.Reset()
	protocol.EncodeFrame(f.out, f.seq, body)
	if f.out.Truncated() {
		// A cut-off frame would only fail its CRC on the host.
		f.Errors++
		return
	}
	f.seq++
	if _, err := f.w.Write(f.out.Result()); err != nil {
		f.Errors++
	}
}
