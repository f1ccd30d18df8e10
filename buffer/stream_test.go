package buffer

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func drain(s Stream) []uint16 {
	var buf []uint16
	for c := s.Advance(); c != EOF; c = s.Advance() {
		buf = append(buf, uint16(c))
	}
	return buf
}

func TestMemory(t *testing.T) {
	s := NewMemoryString("a\U0001F600b")
	test.T(t, s.Len(), 4)
	test.T(t, s.Pos(), 0)
	test.T(t, s.Advance(), int32('a'))
	test.T(t, s.Advance(), int32(0xD83D))
	test.T(t, s.Advance(), int32(0xDE00))
	test.T(t, s.Advance(), int32('b'))
	test.T(t, s.Pos(), 4)
	test.T(t, s.Advance(), EOF)
	test.T(t, s.Pos(), 5, "end of input takes up a position")
	s.PushBack(EOF)
	test.T(t, s.Pos(), 4)
	s.PushBack('b')
	s.PushBack(0xDE00)
	test.T(t, s.Pos(), 2, "consecutive pushbacks")
	test.T(t, s.Advance(), int32(0xDE00))
}

func TestMemorySeekForward(t *testing.T) {
	s := NewMemoryString("abcdef")
	test.T(t, s.SeekForward(2), 2)
	test.T(t, s.Advance(), int32('c'))
	test.T(t, s.SeekForward(10), 3, "seek is clamped to the end")
	test.T(t, s.Advance(), EOF)
	test.T(t, s.SeekForward(1), 0)
}

func TestMemoryBookmark(t *testing.T) {
	s := NewMemoryString("abc")
	s.Advance()
	test.That(t, s.SetBookmark())
	test.T(t, drain(s), []uint16{'b', 'c'})
	s.ResetToBookmark()
	test.T(t, s.Pos(), 1)
	test.T(t, drain(s), []uint16{'b', 'c'})

	s = NewMemory(nil)
	test.That(t, s.SetBookmark(), "bookmark at end of input")
	test.T(t, s.Advance(), EOF)
	s.ResetToBookmark()
	test.T(t, s.Pos(), 0)
}

func TestStreamsAgree(t *testing.T) {
	for _, src := range []string{"", "x", "var a = 'ÿ';", "\U0001F600 \r\n"} {
		t.Run(src, func(t *testing.T) {
			m := drain(NewMemoryString(src))
			r := drain(NewReader(strings.NewReader(src)))
			test.T(t, r, m)
		})
	}
}
