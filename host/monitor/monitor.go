// Package monitor decodes the firmware's telemetry stream on the host.
package monitor

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"aircon/core"
	"aircon/protocol"
)

const rxSize = 4 * protocol.MessageMax

// Stats counts what the monitor has seen.
type Stats struct {
	Frames  uint32 // verified frames
	Dropped uint32 // frames rejected by the decoder
	SeqGaps uint32 // frames missing according to the sequence numbers
	Unknown uint32 // frames with an unrecognised message id
	Faults  uint32
}

// Monitor turns raw bytes into telemetry snapshots and fault reports.
// It implements io.Writer so a core.FrameWriter can feed it directly.
type Monitor struct {
	log  zerolog.Logger
	rx   *protocol.RxRing
	dec  *protocol.Decoder

	nextSeq int // -1 until the first frame
	stats   Stats

	// OnTelemetry receives every decoded cycle.
	OnTelemetry func(t core.Telemetry)

	// OnFault receives the reason the firmware halted.
	OnFault func(reason string)
}

// New returns a monitor that logs through log.
func New(log zerolog.Logger) *Monitor {
	m := &Monitor{
		log:     log,
		rx:      protocol.NewRxRing(rxSize),
		dec:     protocol.NewDecoder(),
		nextSeq: -1,
	}
	m.dec.OnError = func(err error) {
		m.log.Warn().Err(err).Msg("dropped frame")
	}
	return m
}

// Stats returns the counters.
func (m *Monitor) Stats() Stats {
	s := m.stats
	s.Dropped = m.dec.Dropped
	return s
}

// Write implements io.Writer. It never fails: bytes that do not fit in the
// ring are decoded in chunks.
func (m *Monitor) Write(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		n := m.rx.Write(p)
		p = p[n:]
		m.dec.Receive(m.rx, m.handleFrame)
		if n == 0 && m.rx.Free() == 0 {
			// A full ring with no complete frame is garbage.
			m.log.Warn().Int("bytes", m.rx.Available()).Msg("discarding undecodable input")
			m.rx.Reset()
		}
	}
	return total, nil
}

// Run copies from r into the decoder until ctx is cancelled or r reaches EOF.
// A read of 0, nil is an idle link (a serial read timeout) and Run keeps
// polling; r must report the end of the stream with io.EOF.
func (m *Monitor) Run(ctx context.Context, r io.Reader) error {
	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		n, err := r.Read(buf)
		if n > 0 {
			m.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Monitor) handleFrame(seq uint8, payload []byte) {
	m.stats.Frames++
	if m.nextSeq >= 0 && int(seq) != m.nextSeq {
		gap := (int(seq) - m.nextSeq) & protocol.MessageSeqMask
		m.stats.SeqGaps += uint32(gap)
		m.log.Warn().Uint8("seq", seq).Int("expected", m.nextSeq).Msg("sequence gap")
	}
	m.nextSeq = int(seq+1) & protocol.MessageSeqMask

	data := payload
	id, err := protocol.DecodeVLQUint(&data)
	if err != nil {
		m.stats.Unknown++
		return
	}

	switch id {
	case protocol.MsgCycleState:
		t, err := core.DecodeTelemetry(payload)
		if err != nil {
			m.log.Warn().Err(err).Msg("bad cycle_state")
			return
		}
		m.log.Debug().
			Uint32("ticks", t.Ticks).
			Uint32("duty", t.Duty).
			Uint32("light", t.Light).
			Str("mode", t.Mode.String()).
			Int32("temp", t.Temperature).
			Msg("cycle")
		if m.OnTelemetry != nil {
			m.OnTelemetry(t)
		}

	case protocol.MsgFault:
		reason, err := core.DecodeFault(payload)
		if err != nil {
			m.log.Warn().Err(err).Msg("bad fault")
			return
		}
		m.stats.Faults++
		m.log.Error().Str("reason", reason).Msg("firmware halted")
		if m.OnFault != nil {
			m.OnFault(reason)
		}

	default:
		m.stats.Unknown++
		m.log.Warn().Uint32("id", id).Msg("unknown message")
	}
}
