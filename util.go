// Package jsscan contains helpers shared by the scanner packages and the jsscan command, such as converting code-unit offsets into line and column positions for error messages.
package jsscan

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/mattn/go-runewidth"
)

// IsNewline returns true for ECMAScript line terminators.
func IsNewline(c uint16) bool {
	return c == '\n' || c == '\r' || c == 0x2028 || c == 0x2029
}

// UTF16ToString converts UTF-16 code units to UTF-8. Unpaired surrogates become U+FFFD.
func UTF16ToString(u []uint16) string {
	return string(utf16.Decode(u))
}

// StringToUTF16 converts a UTF-8 string to UTF-16 code units.
func StringToUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Printable replaces unprintable characters and truncates s to at most width terminal columns, ending in an ellipsis if it was cut. A width of zero or less does not truncate.
func Printable(s string, width int) string {
	s = strings.Map(printableRune, s)
	if 0 < width {
		s = runewidth.Truncate(s, width, "…")
	}
	return s
}

func printableRune(r rune) rune {
	if !unicode.IsGraphic(r) {
		return '·'
	}
	return r
}
