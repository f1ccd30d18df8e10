// Package buffer contains the code-unit streams a scanner pulls its input from, and the literal buffers it collects token text into.
package buffer

import (
	"unicode/utf16"
)

// EOF is returned by Stream.Advance when the input is exhausted.
const EOF int32 = -1

// Stream is a pull source of UTF-16 code units.
type Stream interface {
	// Advance returns the next code unit and moves forward by one. At the end of the input it returns EOF, but the position still increases so that the end of input takes up one position.
	Advance() int32

	// Pos returns the zero-based position of the next code unit.
	Pos() int

	// SeekForward skips n code units or until the end of the input, whichever comes first, and returns the number skipped. It must not be called right after PushBack.
	SeekForward(n int) int

	// PushBack un-consumes the unit (or EOF) returned by the most recent Advance.
	PushBack(c int32)

	// SetBookmark remembers the current position and returns false if the stream cannot rewind to it.
	SetBookmark() bool

	// ResetToBookmark rewinds to the position remembered by SetBookmark.
	ResetToBookmark()
}

// Memory is a Stream over code units held in memory.
type Memory struct {
	buf      []uint16
	pos      int
	bookmark int
}

// NewMemory returns a stream over the given code units. The slice is not copied.
func NewMemory(buf []uint16) *Memory {
	return &Memory{
		buf:      buf,
		bookmark: -1,
	}
}

// NewMemoryString returns a stream over the UTF-16 encoding of a UTF-8 string.
func NewMemoryString(s string) *Memory {
	return NewMemory(utf16.Encode([]rune(s)))
}

// Advance implements Stream.
func (z *Memory) Advance() int32 {
	if z.pos < len(z.buf) {
		c := z.buf[z.pos]
		z.pos++
		return int32(c)
	}
	z.pos++
	return EOF
}

// Pos implements Stream.
func (z *Memory) Pos() int {
	return z.pos
}

// Len returns the total number of code units.
func (z *Memory) Len() int {
	return len(z.buf)
}

// Bytes returns the underlying code units.
func (z *Memory) Bytes() []uint16 {
	return z.buf
}

// SeekForward implements Stream.
func (z *Memory) SeekForward(n int) int {
	if remaining := len(z.buf) - z.pos; remaining < n {
		n = remaining
	}
	if n < 0 {
		return 0
	}
	z.pos += n
	return n
}

// PushBack implements Stream.
func (z *Memory) PushBack(c int32) {
	if 0 < z.pos {
		z.pos--
	}
}

// SetBookmark implements Stream.
func (z *Memory) SetBookmark() bool {
	z.bookmark = z.pos
	return true
}

// ResetToBookmark implements Stream.
func (z *Memory) ResetToBookmark() {
	if 0 <= z.bookmark {
		z.pos = z.bookmark
	}
}
