package buffer

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestReader(t *testing.T) {
	var s = `Lorem ipsum`
	var r = NewReader(bytes.NewBufferString(s))

	assert.Equal(t, 0, r.Pos(), "reader must start at position 0")
	assert.Equal(t, int32('L'), r.Advance(), "first character must be 'L'")
	assert.Equal(t, int32('o'), r.Advance(), "second character must be 'o'")
	r.PushBack('o')
	assert.Equal(t, 1, r.Pos(), "must be at position 1 after pushback")
	assert.Equal(t, int32('o'), r.Advance(), "must be 'o' again after pushback")

	assert.Equal(t, 4, r.SeekForward(4), "must skip four characters")
	assert.Equal(t, int32('i'), r.Advance(), "must be 'i' at position 6")
	assert.Equal(t, 4, r.SeekForward(10), "seek must stop at the end")
	assert.Equal(t, EOF, r.Advance(), "must be EOF past the end")
	assert.Equal(t, len(s)+1, r.Pos(), "end of input takes up a position")
	assert.Nil(t, r.Err(), "error must be nil at the end of input")
}

func TestReaderSmall(t *testing.T) {
	defer func(minBuf, maxBuf int) {
		MinBuf, MaxBuf = minBuf, maxBuf
	}(MinBuf, MaxBuf)
	MinBuf = 4
	MaxBuf = 8

	var r = NewReader(iotest.OneByteReader(bytes.NewBufferString("abcdefghij")))
	for _, c := range "abcd" {
		assert.Equal(t, int32(c), r.Advance())
	}
	r.PushBack('d')
	r.PushBack('c')
	assert.Equal(t, int32('c'), r.Advance(), "two units are kept for pushback")

	assert.True(t, r.SetBookmark(), "bookmark must succeed before an error")
	for _, c := range "defghij" {
		assert.Equal(t, int32(c), r.Advance())
	}
	assert.Equal(t, EOF, r.Advance())
	assert.Nil(t, r.Err(), "pinned window must fit in MaxBuf")

	r.ResetToBookmark()
	assert.Equal(t, 3, r.Pos(), "must rewind to the bookmark")
	assert.Equal(t, int32('d'), r.Advance(), "rewound characters must be retained")
}

func TestReaderBufferExceeded(t *testing.T) {
	defer func(minBuf, maxBuf int) {
		MinBuf, MaxBuf = minBuf, maxBuf
	}(MinBuf, MaxBuf)
	MinBuf = 4
	MaxBuf = 8

	var r = NewReader(bytes.NewBufferString("abcdefghijklmnop"))
	assert.True(t, r.SetBookmark())
	n := 0
	for r.Advance() != EOF {
		n++
	}
	assert.Equal(t, 8, n, "a pinned window stops growing at MaxBuf")
	assert.Equal(t, ErrBufferExceeded, r.Err(), "error must be ErrBufferExceeded")

	r.ResetToBookmark()
	assert.Equal(t, int32('a'), r.Advance(), "pinned characters must survive")
}

func TestReaderDropBookmark(t *testing.T) {
	defer func(minBuf int) {
		MinBuf = minBuf
	}(MinBuf)
	MinBuf = 4

	var r = NewReader(bytes.NewBufferString("abcdefghijklmnop"))
	assert.True(t, r.SetBookmark())
	r.Advance()
	r.DropBookmark()
	for r.Advance() != EOF {
	}
	assert.Nil(t, r.Err())
	assert.LessOrEqual(t, len(r.buf), 2+MinBuf/2, "window must be released after dropping the bookmark")
}

func TestReaderError(t *testing.T) {
	errBoom := errors.New("boom")
	var r = NewReader(io.MultiReader(bytes.NewBufferString("ab"), iotest.ErrReader(errBoom)))
	for i := 0; i < 10 && r.Advance() != EOF; i++ {
	}
	assert.Equal(t, errBoom, r.Err(), "read error must be reported")
	assert.False(t, r.SetBookmark(), "bookmark must fail after a read error")
}

func TestReaderEncoding(t *testing.T) {
	var tests = []struct {
		name     string
		r        *Reader
		expected []uint16
	}{
		{"utf-8", NewReader(bytes.NewBufferString("é\U0001F600")), []uint16{0xE9, 0xD83D, 0xDE00}},
		{"latin1", NewReaderEncoding(bytes.NewBufferString("\xe9\xff"), charmap.ISO8859_1), []uint16{0xE9, 0xFF}},
		{"utf-16be", NewReaderEncoding(bytes.NewBufferString("\xfe\xff\x00A\xd8\x3d\xde\x00"), unicode.UTF16(unicode.BigEndian, unicode.UseBOM)), []uint16{'A', 0xD83D, 0xDE00}},
		{"utf-16le", NewReaderEncoding(bytes.NewBufferString("A\x00\xac\x20"), unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)), []uint16{'A', 0x20AC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, drain(tt.r))
			assert.Nil(t, tt.r.Err())
		})
	}
}

func TestReadAll(t *testing.T) {
	buf, err := ReadAll(bytes.NewBufferString("x\u2028y"), unicode.UTF8)
	assert.Nil(t, err)
	assert.Equal(t, []uint16{'x', 0x2028, 'y'}, buf)
}
