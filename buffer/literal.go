package buffer

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"fortio.org/safecast"
)

const (
	literalInitialCapacity = 16
	literalGrowthFactor    = 4
	literalMaxGrowth       = 1 << 20 // bytes per growth step
)

// Literal collects the characters of a token's literal value. It starts out narrow, storing Latin-1 characters one byte each, and switches to UTF-16 code units the first time a character beyond Latin-1 is added. Once wide, it stays wide until Reset.
// The zero value is an empty narrow buffer ready to use.
type Literal struct {
	one  []byte
	two  []uint16
	wide bool
}

// newCapacity returns the capacity in bytes of the next backing store. The store grows by a factor of four but never by more than 1 MiB at once.
func newCapacity(capacity, min int) int {
	if capacity < literalInitialCapacity {
		capacity = literalInitialCapacity
	} else {
		n := capacity * literalGrowthFactor
		if capacity+literalMaxGrowth < n {
			n = capacity + literalMaxGrowth
		}
		capacity = n
	}
	if capacity < min {
		capacity = min
	}
	return capacity
}

// AddChar appends a code point. Code points outside the Basic Multilingual Plane are stored as a surrogate pair. Negative values are ignored.
func (l *Literal) AddChar(c rune) {
	if c < 0 {
		return
	}
	if !l.wide {
		if c <= 0xFF {
			if len(l.one) == cap(l.one) {
				one := make([]byte, len(l.one), newCapacity(cap(l.one), len(l.one)+1))
				copy(one, l.one)
				l.one = one
			}
			l.one = append(l.one, byte(c))
			return
		}
		l.convertToTwoByte()
	}
	if u, err := safecast.Conv[uint16](c); err == nil {
		l.addCodeUnit(u)
		return
	}
	r1, r2 := utf16.EncodeRune(c)
	l.addCodeUnit(uint16(r1))
	l.addCodeUnit(uint16(r2))
}

func (l *Literal) addCodeUnit(u uint16) {
	if len(l.two) == cap(l.two) {
		two := make([]uint16, len(l.two), newCapacity(2*cap(l.two), 2*len(l.two)+2)/2)
		copy(two, l.two)
		l.two = two
	}
	l.two = append(l.two, u)
}

// convertToTwoByte widens the buffer in place, keeping all characters added so far.
func (l *Literal) convertToTwoByte() {
	n := len(l.one)
	if cap(l.two) <= n {
		l.two = make([]uint16, 0, newCapacity(2*n, 2*n+2)/2)
	}
	l.two = l.two[:n]
	for i, c := range l.one {
		l.two[i] = uint16(c)
	}
	l.one = l.one[:0]
	l.wide = true
}

// OneByte returns true if all characters fit in Latin-1 and the buffer is stored narrow.
func (l *Literal) OneByte() bool {
	return !l.wide
}

// Length returns the number of code units (or bytes when narrow).
func (l *Literal) Length() int {
	if l.wide {
		return len(l.two)
	}
	return len(l.one)
}

// OneByteLiteral returns the narrow contents. It is only meaningful when OneByte returns true. The slice is valid until the buffer is modified.
func (l *Literal) OneByteLiteral() []byte {
	if l.wide {
		return nil
	}
	return l.one
}

// TwoByteLiteral returns the wide contents. It is only meaningful when OneByte returns false. The slice is valid until the buffer is modified.
func (l *Literal) TwoByteLiteral() []uint16 {
	if !l.wide {
		return nil
	}
	return l.two
}

// ReduceLength removes the last delta characters.
func (l *Literal) ReduceLength(delta int) {
	n := l.Length() - delta
	if n < 0 {
		n = 0
	}
	if l.wide {
		l.two = l.two[:n]
	} else {
		l.one = l.one[:n]
	}
}

// IsContextualKeyword returns true if the buffer is narrow and equal to the given ASCII keyword.
func (l *Literal) IsContextualKeyword(keyword string) bool {
	return !l.wide && len(l.one) == len(keyword) && string(l.one) == keyword
}

// Reset empties the buffer and makes it narrow again. Capacity is retained.
func (l *Literal) Reset() {
	l.one = l.one[:0]
	l.two = l.two[:0]
	l.wide = false
}

// CopyFrom replaces the contents and representation with those of other. A nil other resets the buffer.
func (l *Literal) CopyFrom(other *Literal) {
	if other == nil {
		l.Reset()
		return
	}
	l.wide = other.wide
	l.one = append(l.one[:0], other.one...)
	l.two = append(l.two[:0], other.two...)
}

// AppendUTF16 appends the contents as UTF-16 code units to dst.
func (l *Literal) AppendUTF16(dst []uint16) []uint16 {
	if l.wide {
		return append(dst, l.two...)
	}
	for _, c := range l.one {
		dst = append(dst, uint16(c))
	}
	return dst
}

// Equal returns true if the contents equal the given UTF-8 string.
func (l *Literal) Equal(s string) bool {
	if !l.wide {
		i := 0
		for _, r := range s {
			if len(l.one) <= i || rune(l.one[i]) != r {
				return false
			}
			i++
		}
		return i == len(l.one)
	}
	i := 0
	for _, r := range s {
		if 0xFFFF < r {
			r1, r2 := utf16.EncodeRune(r)
			if len(l.two) <= i+1 || rune(l.two[i]) != r1 || rune(l.two[i+1]) != r2 {
				return false
			}
			i += 2
			continue
		}
		if len(l.two) <= i || rune(l.two[i]) != r {
			return false
		}
		i++
	}
	return i == len(l.two)
}

// String returns the contents as UTF-8. Unpaired surrogates are replaced by U+FFFD.
func (l *Literal) String() string {
	if !l.wide {
		sb := strings.Builder{}
		sb.Grow(len(l.one))
		for _, c := range l.one {
			if c < utf8.RuneSelf {
				sb.WriteByte(c)
			} else {
				sb.WriteRune(rune(c))
			}
		}
		return sb.String()
	}
	return string(utf16.Decode(l.two))
}
