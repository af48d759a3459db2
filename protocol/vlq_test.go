package protocol

import (
	"errors"
	"testing"
)

func TestVLQEncodeDecodeInt(t *testing.T) {
	testCases := []int32{
		0, 1, -1, 95, -32, 96, -33,
		127, -127, 4095, -4096,
		1000000, -1000000,
		2147483647, -2147483648,
	}

	for _, expected := range testCases {
		output := NewFrameScratch()
		EncodeVLQInt(output, expected)
		encoded := output.Result()

		data := encoded
		decoded, err := DecodeVLQInt(&data)
		if err != nil {
			t.Errorf("Failed to decode VLQ for value %d: %v", expected, err)
			continue
		}
		if decoded != expected {
			t.Errorf("VLQ mismatch: expected %d, got %d (encoded as %v)", expected, decoded, encoded)
		}
		if len(data) != 0 {
			t.Errorf("VLQ decode didn't consume all bytes for value %d: %d bytes remaining", expected, len(data))
		}
	}
}

func TestVLQEncodedLength(t *testing.T) {
	testCases := []struct {
		value  int32
		length int
	}{
		{0, 1},
		{95, 1},
		{-32, 1},
		{96, 2},
		{4095, 2},
		{24999, 3},
		{-1 << 30, 5},
	}

	for _, tc := range testCases {
		output := NewFrameScratch()
		EncodeVLQInt(output, tc.value)
		if got := len(output.Result()); got != tc.length {
			t.Errorf("Expected %d bytes for %d, got %d", tc.length, tc.value, got)
		}
	}
}

func TestVLQUintTicks(t *testing.T) {
	// Tick counters use the full unsigned range
	for _, expected := range []uint32{0, 200, 1 << 31, 0xFFFFFFFF} {
		output := NewFrameScratch()
		EncodeVLQUint(output, expected)
		data := output.Result()

		decoded, err := DecodeVLQUint(&data)
		if err != nil {
			t.Fatalf("Failed to decode %d: %v", expected, err)
		}
		if decoded != expected {
			t.Errorf("Expected %d, got %d", expected, decoded)
		}
	}
}

func TestVLQString(t *testing.T) {
	output := NewFrameScratch()
	EncodeVLQString(output, "tick source missing")
	EncodeVLQUint(output, 7)

	data := output.Result()
	s, err := DecodeVLQString(&data)
	if err != nil {
		t.Fatalf("DecodeVLQString failed: %v", err)
	}
	if s != "tick source missing" {
		t.Errorf("Expected 'tick source missing', got '%s'", s)
	}

	next, err := DecodeVLQUint(&data)
	if err != nil || next != 7 {
		t.Errorf("Expected trailing value 7, got %d (err=%v)", next, err)
	}
}

func TestVLQBufferTooSmall(t *testing.T) {
	var empty []byte
	if _, err := DecodeVLQInt(&empty); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Expected ErrBufferTooSmall for empty input, got %v", err)
	}

	truncated := []byte{0x81}
	if _, err := DecodeVLQInt(&truncated); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Expected ErrBufferTooSmall for truncated input, got %v", err)
	}

	short := []byte{0x05, 'a', 'b'}
	if _, err := DecodeVLQString(&short); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Expected ErrBufferTooSmall for short string, got %v", err)
	}
}

func TestVLQTooLong(t *testing.T) {
	data := []byte{0x81, 0x81, 0x81, 0x81, 0x81, 0x01}
	if _, err := DecodeVLQInt(&data); !errors.Is(err, ErrInvalidVLQ) {
		t.Errorf("Expected ErrInvalidVLQ, got %v", err)
	}
}
