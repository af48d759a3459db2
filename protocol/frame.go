package protocol

import "errors"

var (
	ErrBadFrame = errors.New("malformed frame")
	ErrBadCRC   = errors.New("frame CRC mismatch")
)

// EncodeFrame wraps the payload written by body in a frame with sequence seq.
// seq is reduced to its low four bits and tagged with MessageDest.
func EncodeFrame(output OutputBuffer, seq uint8, body func(output OutputBuffer)) {
	cursor := output.CurPosition()

	// Write header (length placeholder and sequence)
	output.Output([]byte{0, (seq & MessageSeqMask) | MessageDest})

	body(output)

	// Update length field
	changed := len(output.DataSince(cursor))
	output.Update(cursor, uint8(changed+MessageTrailerSize))

	crc := CRC16(output.DataSince(cursor))
	output.Output([]byte{
		uint8((crc & 0xFF00) >> 8),
		uint8(crc & 0xFF),
		MessageValueSync,
	})
}

// FrameHandler receives one verified frame. payload aliases the input buffer
// and is only valid for the duration of the call.
type FrameHandler func(seq uint8, payload []byte)

// Decoder splits a byte stream into verified frames, resynchronising on the
// sync byte after garbage or corruption.
type Decoder struct {
	synchronized bool

	// OnError, if set, is told about every frame that was dropped.
	OnError func(err error)

	Frames  uint32 // frames delivered
	Dropped uint32 // frames rejected
}

// NewDecoder returns a decoder that assumes the stream starts on a frame boundary.
func NewDecoder() *Decoder {
	return &Decoder{synchronized: true}
}

// Receive consumes every complete frame in input and pops the consumed bytes.
// An incomplete trailing frame stays in input for the next call.
func (d *Decoder) Receive(input InputBuffer, handler FrameHandler) {
	data := input.Data()
	total := len(data)

	for len(data) > 0 {
		if !d.synchronized {
			// Look for sync byte to resynchronize
			syncPos := -1
			for i, b := range data {
				if b == MessageValueSync {
					syncPos = i
					break
				}
			}
			if syncPos < 0 {
				data = nil
				break
			}
			data = data[syncPos+1:]
			d.synchronized = true
			continue
		}

		// Skip leading sync bytes
		if data[0] == MessageValueSync {
			data = data[1:]
			continue
		}

		if len(data) < MessageLengthMin {
			break
		}

		msgLen := int(data[MessagePositionLen])
		if msgLen < MessageLengthMin || msgLen > MessageLengthMax {
			d.drop(ErrBadFrame)
			continue
		}

		seq := data[MessagePositionSeq]
		if seq&^MessageSeqMask != MessageDest {
			d.drop(ErrBadFrame)
			continue
		}

		// Wait for full message
		if len(data) < msgLen {
			break
		}

		if data[msgLen-MessageTrailerSync] != MessageValueSync {
			d.drop(ErrBadFrame)
			continue
		}

		frameCRC := uint16(data[msgLen-MessageTrailerCRC])<<8 |
			uint16(data[msgLen-MessageTrailerCRC+1])
		if frameCRC != CRC16(data[:msgLen-MessageTrailerSize]) {
			d.drop(ErrBadCRC)
			continue
		}

		payload := data[MessageHeaderSize : msgLen-MessageTrailerSize]
		data = data[msgLen:]
		d.Frames++
		if handler != nil {
			handler(seq&MessageSeqMask, payload)
		}
	}

	if consumed := total - len(data); consumed > 0 {
		input.Pop(consumed)
	}
}

// drop marks the stream unsynchronized; scanning restarts after the next sync byte.
func (d *Decoder) drop(err error) {
	d.synchronized = false
	d.Dropped++
	if d.OnError != nil {
		d.OnError(err)
	}
}
