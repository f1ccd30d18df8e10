package jsscan

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/tdewolff/jsscan/buffer"
	"github.com/tdewolff/jsscan/js"
)

func TestError(t *testing.T) {
	err := NewError("message", StringToUTF16("buffer"), 3)

	line, column, context := err.Position()
	test.T(t, line, 1, "line")
	test.T(t, column, 4, "column")
	test.T(t, "\n"+context, "\n    1: buffer\n          ^", "context")

	test.T(t, err.Error(), "message on line 1 and column 4\n    1: buffer\n          ^", "error")
}

func TestErrorScanner(t *testing.T) {
	src := StringToUTF16("var a;\nb = '\\x4';")
	z := js.NewScanner(buffer.NewMemory(src), js.Options{})
	test.T(t, NewErrorScanner(z, src), (*Error)(nil))
	for z.Next() != js.EOSToken {
	}
	err := NewErrorScanner(z, src)
	test.That(t, err != nil, "must have error")

	line, column, context := err.Position()
	test.T(t, line, 2, "line")
	test.T(t, column, 6, "column")
	test.T(t, "\n"+context, "\n    2: b = '\\x4';\n            ^", "context")
	test.String(t, err.Message, "invalid hexadecimal escape sequence")
}
