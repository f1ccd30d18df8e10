package buffer

import (
	"encoding/binary"
	"errors"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrBufferExceeded is returned when a bookmark pins more than MaxBuf code units.
var ErrBufferExceeded = errors.New("max buffer exceeded")

// MinBuf is the number of bytes requested from the underlying reader at once.
var MinBuf = 4096

// MaxBuf is the maximum number of code units a bookmark can pin.
var MaxBuf = 4 * 1024 * 1024

// pushbackWindow is the number of consumed code units always retained, so that a scanner can un-read a surrogate pair.
const pushbackWindow = 2

const maxConsecutiveEmptyReads = 100

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

////////////////////////////////////////////////////////////////

// Reader is a Stream that decodes an io.Reader in chunks. Consumed code units are discarded as the reader advances, unless a bookmark pins them.
type Reader struct {
	r       io.Reader
	readErr error

	raw  []byte   // bytes read but not yet decoded, at most one odd byte between blocks
	buf  []uint16 // retained window of code units
	base int      // position of buf[0]
	pos  int

	bookmark int
}

// NewReader returns a stream that reads UTF-8 encoded text.
func NewReader(r io.Reader) *Reader {
	return NewReaderEncoding(r, unicode.UTF8)
}

// NewReaderEncoding returns a stream that reads text in the given encoding, eg. charmap.ISO8859_1 or unicode.UTF16(unicode.BigEndian, unicode.UseBOM).
func NewReaderEncoding(r io.Reader, enc encoding.Encoding) *Reader {
	t := transform.Chain(enc.NewDecoder(), utf16le.NewEncoder())
	return &Reader{
		r:        transform.NewReader(r, t),
		bookmark: -1,
	}
}

// Err returns the error of the underlying reader, if it was not io.EOF.
func (z *Reader) Err() error {
	if z.readErr == io.EOF {
		return nil
	}
	return z.readErr
}

// compact discards consumed code units that can no longer be pushed back or rewound to.
func (z *Reader) compact() {
	keep := z.pos - pushbackWindow
	if 0 <= z.bookmark && z.bookmark < keep {
		keep = z.bookmark
	}
	if n := keep - z.base; 0 < n {
		if len(z.buf) < n {
			n = len(z.buf)
		}
		z.buf = z.buf[:copy(z.buf, z.buf[n:])]
		z.base += n
	}
}

// readBlock decodes at least one more code unit into the window. It returns false at the end of input or on error.
func (z *Reader) readBlock() bool {
	if z.readErr != nil {
		return false
	}
	z.compact()
	if MaxBuf <= len(z.buf) {
		z.readErr = ErrBufferExceeded
		return false
	}
	if cap(z.raw) < MinBuf {
		raw := make([]byte, len(z.raw), MinBuf)
		copy(raw, z.raw)
		z.raw = raw
	}
	for empty := 0; ; {
		n, err := z.r.Read(z.raw[len(z.raw):cap(z.raw)])
		z.raw = z.raw[:len(z.raw)+n]
		k := len(z.raw) &^ 1
		for i := 0; i < k; i += 2 {
			z.buf = append(z.buf, binary.LittleEndian.Uint16(z.raw[i:]))
		}
		z.raw = append(z.raw[:0], z.raw[k:]...)
		if err != nil {
			z.readErr = err
			return 0 < k
		} else if 0 < k {
			return true
		} else if n == 0 {
			if empty++; maxConsecutiveEmptyReads <= empty {
				z.readErr = io.ErrNoProgress
				return false
			}
		}
	}
}

// Advance implements Stream.
func (z *Reader) Advance() int32 {
	i := z.pos - z.base
	if len(z.buf) <= i {
		if !z.readBlock() {
			z.pos++
			return EOF
		}
		i = z.pos - z.base
	}
	c := z.buf[i]
	z.pos++
	return int32(c)
}

// Pos implements Stream.
func (z *Reader) Pos() int {
	return z.pos
}

// SeekForward implements Stream.
func (z *Reader) SeekForward(n int) int {
	skipped := 0
	for skipped < n {
		avail := z.base + len(z.buf) - z.pos
		if avail <= 0 {
			if !z.readBlock() {
				break
			}
			continue
		}
		if n-skipped < avail {
			avail = n - skipped
		}
		z.pos += avail
		skipped += avail
	}
	return skipped
}

// PushBack implements Stream.
func (z *Reader) PushBack(c int32) {
	if z.base < z.pos {
		z.pos--
	}
}

// SetBookmark implements Stream. It fails once the underlying reader returned an error other than io.EOF, since the input cannot be replayed.
func (z *Reader) SetBookmark() bool {
	if z.readErr != nil && !errors.Is(z.readErr, io.EOF) {
		return false
	}
	z.bookmark = z.pos
	return true
}

// ResetToBookmark implements Stream. The bookmark is released afterwards.
func (z *Reader) ResetToBookmark() {
	if 0 <= z.bookmark {
		z.pos = z.bookmark
		z.bookmark = -1
	}
}

// DropBookmark releases the code units pinned by a bookmark that will not be reset to.
func (z *Reader) DropBookmark() {
	z.bookmark = -1
}

////////////////////////////////////////////////////////////////

// ReadAll decodes all of r in the given encoding into UTF-16 code units.
func ReadAll(r io.Reader, enc encoding.Encoding) ([]uint16, error) {
	z := NewReaderEncoding(r, enc)
	var buf []uint16
	for {
		c := z.Advance()
		if c == EOF {
			break
		}
		buf = append(buf, uint16(c))
	}
	return buf, z.Err()
}
