package buffer

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLiteralNarrow(t *testing.T) {
	var l Literal
	test.That(t, l.OneByte(), "zero value must be narrow")
	test.T(t, l.Length(), 0)

	for _, c := range "café" {
		l.AddChar(c)
	}
	test.That(t, l.OneByte(), "Latin-1 must stay narrow")
	test.T(t, l.Length(), 4)
	test.Bytes(t, l.OneByteLiteral(), []byte("caf\xe9"))
	test.T(t, len(l.TwoByteLiteral()), 0)
	test.String(t, l.String(), "café")
	test.That(t, l.Equal("café"))
	test.That(t, !l.Equal("cafe"))
	test.That(t, !l.Equal("cafés"))
}

func TestLiteralWiden(t *testing.T) {
	var l Literal
	l.AddChar('a')
	l.AddChar('ÿ')
	l.AddChar('Ā')
	test.That(t, !l.OneByte(), "must widen on first character beyond Latin-1")
	test.T(t, l.TwoByteLiteral(), []uint16{'a', 0xFF, 0x100})
	test.T(t, len(l.OneByteLiteral()), 0)

	l.AddChar('b')
	test.That(t, !l.OneByte(), "must stay wide")
	test.String(t, l.String(), "aÿĀb")

	l.Reset()
	test.That(t, l.OneByte(), "reset must make the buffer narrow")
	test.T(t, l.Length(), 0)
}

func TestLiteralAstral(t *testing.T) {
	var l Literal
	l.AddChar(0x1F600)
	test.That(t, !l.OneByte())
	test.T(t, l.TwoByteLiteral(), []uint16{0xD83D, 0xDE00})
	test.T(t, l.Length(), 2)
	test.That(t, l.Equal("\U0001F600"))
	test.String(t, l.String(), "\U0001F600")

	l.AddChar(-1)
	test.T(t, l.Length(), 2, "negative characters are ignored")
}

func TestLiteralGrowth(t *testing.T) {
	test.T(t, newCapacity(0, 1), 16)
	test.T(t, newCapacity(16, 17), 64)
	test.T(t, newCapacity(64, 65), 256)
	test.T(t, newCapacity(1<<20, 1<<20+1), 2<<20)
	test.T(t, newCapacity(16, 1000), 1000)

	var l Literal
	s := strings.Repeat("abcdefgh", 100)
	for _, c := range s {
		l.AddChar(c)
	}
	test.String(t, l.String(), s)
	l.AddChar('€')
	test.String(t, l.String(), s+"€", "widening must keep contents")
}

func TestLiteralReduceLength(t *testing.T) {
	var l Literal
	for _, c := range "abc${" {
		l.AddChar(c)
	}
	l.ReduceLength(2)
	test.String(t, l.String(), "abc")
	l.ReduceLength(10)
	test.T(t, l.Length(), 0)

	l.AddChar(0x2028)
	l.AddChar('`')
	l.ReduceLength(1)
	test.T(t, l.TwoByteLiteral(), []uint16{0x2028})
}

func TestLiteralContextualKeyword(t *testing.T) {
	var l Literal
	for _, c := range "async" {
		l.AddChar(c)
	}
	test.That(t, l.IsContextualKeyword("async"))
	test.That(t, !l.IsContextualKeyword("await"))
	test.That(t, !l.IsContextualKeyword("asyncs"))

	l.Reset()
	l.AddChar('Ā')
	test.That(t, !l.IsContextualKeyword("Ā"), "wide buffers never match")
}

func TestLiteralCopyFrom(t *testing.T) {
	var a, b Literal
	a.AddChar('x')
	a.AddChar('λ')
	b.AddChar('y')
	b.CopyFrom(&a)
	test.That(t, !b.OneByte())
	test.String(t, b.String(), "xλ")

	a.AddChar('z')
	test.String(t, b.String(), "xλ", "copy must not alias")

	b.CopyFrom(nil)
	test.That(t, b.OneByte())
	test.T(t, b.Length(), 0)

	var c Literal
	c.AddChar('q')
	b.AddChar('Ā')
	b.CopyFrom(&c)
	test.That(t, b.OneByte(), "copy must take the representation of the source")
	test.String(t, b.String(), "q")
}

func TestLiteralAppendUTF16(t *testing.T) {
	var l Literal
	l.AddChar('h')
	l.AddChar('i')
	test.T(t, l.AppendUTF16([]uint16{'>'}), []uint16{'>', 'h', 'i'})
	l.AddChar(0x10000)
	test.T(t, l.AppendUTF16(nil), []uint16{'h', 'i', 0xD800, 0xDC00})
}
