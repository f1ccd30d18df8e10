package jsscan

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestUTF16(t *testing.T) {
	test.T(t, StringToUTF16("a\U0001F600"), []uint16{'a', 0xD83D, 0xDE00})
	test.String(t, UTF16ToString([]uint16{'a', 0xD83D, 0xDE00}), "a\U0001F600")
	test.String(t, UTF16ToString([]uint16{0xD800, 'a'}), "\uFFFDa")
	test.That(t, IsNewline(0x2028))
	test.That(t, !IsNewline('\f'))
}

func TestPrintable(t *testing.T) {
	var tests = []struct {
		s        string
		width    int
		expected string
	}{
		{"abc", 0, "abc"},
		{"a\nb\tc", 0, "a·b·c"},
		{"abcdef", 4, "abc…"},
		{"abcd", 4, "abcd"},
		{"日本語", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			test.String(t, Printable(tt.s, tt.width), tt.expected)
		})
	}
}
