package protocol

import "slices"

// InputBuffer is what the Decoder reads frames from.
type InputBuffer interface {
	Data() []byte
	Available() int
	Pop(n int)
}

// OutputBuffer is what frames are encoded into. Update patches a byte that was
// already written: the length byte is only known once the payload is in.
type OutputBuffer interface {
	Output(data []byte)
	CurPosition() int
	Update(pos int, val byte)
	DataSince(pos int) []byte
}

// FrameScratch assembles one outgoing frame in a fixed MessageMax array.
// Nothing is ever allocated; bytes past the end are discarded and the frame
// is marked truncated so the sender can refuse to put it on the wire.
type FrameScratch struct {
	buf       [MessageMax]byte
	n         int
	truncated bool
}

// NewFrameScratch returns an empty scratch frame.
func NewFrameScratch() *FrameScratch {
	return &FrameScratch{}
}

func (s *FrameScratch) Output(data []byte) {
	c := copy(s.buf[s.n:], data)
	s.n += c
	if c < len(data) {
		s.truncated = true
	}
}

func (s *FrameScratch) CurPosition() int { return s.n }

func (s *FrameScratch) Update(pos int, val byte) {
	if pos < 0 || pos >= s.n {
		return
	}
	s.buf[pos] = val
}

func (s *FrameScratch) DataSince(pos int) []byte {
	if pos < 0 || pos > s.n {
		return nil
	}
	return s.buf[pos:s.n]
}

// Result returns the bytes written since the last Reset.
func (s *FrameScratch) Result() []byte { return s.buf[:s.n] }

// Truncated reports whether any write since the last Reset did not fit.
func (s *FrameScratch) Truncated() bool { return s.truncated }

func (s *FrameScratch) Reset() {
	s.n = 0
	s.truncated = false
}

// RxRing buffers bytes from the serial link until the Decoder has whole frames.
// head == tail means empty, so one slot always stays unused. size must be at
// least 2.
type RxRing struct {
	buf  []byte
	head int // oldest undecoded byte
	tail int // next free slot
}

// NewRxRing returns a ring holding up to size-1 bytes.
func NewRxRing(size int) *RxRing {
	return &RxRing{buf: make([]byte, size)}
}

// Write stores as much of data as fits and returns that count.
func (r *RxRing) Write(data []byte) int {
	if free := r.Free(); len(data) > free {
		data = data[:free]
	}
	first := copy(r.buf[r.tail:], data)
	copy(r.buf, data[first:])
	r.tail = (r.tail + len(data)) % len(r.buf)
	return len(data)
}

func (r *RxRing) Available() int {
	n := r.tail - r.head
	if n < 0 {
		n += len(r.buf)
	}
	return n
}

func (r *RxRing) Free() int {
	return len(r.buf) - 1 - r.Available()
}

// Data returns the buffered bytes as one slice. When they straddle the end of
// the ring it is rotated in place first, so a frame is never split and
// decoding does not allocate.
func (r *RxRing) Data() []byte {
	if r.head > r.tail {
		n := r.Available()
		slices.Reverse(r.buf[:r.head])
		slices.Reverse(r.buf[r.head:])
		slices.Reverse(r.buf)
		r.head, r.tail = 0, n
	}
	return r.buf[r.head:r.tail]
}

// Pop drops up to n bytes from the front. An emptied ring restarts at slot 0.
func (r *RxRing) Pop(n int) {
	if avail := r.Available(); n >= avail {
		r.Reset()
		return
	}
	r.head = (r.head + n) % len(r.buf)
}

func (r *RxRing) Reset() {
	r.head, r.tail = 0, 0
}
