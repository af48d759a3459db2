// Package protocol implements the framed telemetry stream the firmware sends to the host.
package protocol

// Version represents the telemetry protocol version
const Version = "1.0.0"

// Frame layout: len(1) seq(1) payload(n) crc16(2) sync(1)
const (
	MessageMax         = 512 // Scratch output capacity
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E
	MessageDest        = 0x10

	// Message sequence masks
	MessageSeqMask = 0x0F
)

// Message ids, the first VLQ of every payload
const (
	MsgCycleState = 1 // one control-loop cycle
	MsgFault      = 2 // fault reason, sent once before halting
)
