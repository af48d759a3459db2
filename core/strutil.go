package core

// TextBufferSize is the capacity of the buffer the loop renders numbers into,
// terminator included.
const TextBufferSize = 10

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// IntToString renders value in the given base (2..36) into buf, followed by a
// NUL terminator, and returns the number of characters written (terminator excluded).
//
// Nothing is written and 0 is returned when buf holds fewer than 2 bytes, when
// base is out of range, or when the text plus terminator would not fit. The
// length is worked out before the first byte is touched, so a failed call leaves
// buf exactly as it was.
func IntToString(value int, buf []byte, base int) int {
	if len(buf) < 2 || base < 2 || base > 36 {
		return 0
	}

	negative := value < 0
	// Unsigned negation also covers the most negative int.
	mag := uint(value)
	if negative {
		mag = -mag
	}
	b := uint(base)

	n := 0
	if negative {
		n++
	}
	for tmp := mag; ; {
		n++
		tmp /= b
		if tmp == 0 {
			break
		}
	}
	if n+1 > len(buf) {
		return 0
	}

	buf[n] = 0
	pos := n
	for {
		pos--
		buf[pos] = digitChars[mag%b]
		mag /= b
		if mag == 0 {
			break
		}
	}
	if negative {
		buf[0] = '-'
	}
	return n
}

// CString returns the text in buf up to its NUL terminator (or all of buf if there is none).
func CString(buf []byte) string {
	for i, c := range buf {
		if c == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// utoa converts an unsigned integer to a string
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}
