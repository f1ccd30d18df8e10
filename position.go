package jsscan

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Position returns the line and column number for a code-unit offset into src. It is useful for recovering the position in a file that caused an error.
// Lines are terminated by \n, \r, \r\n, U+2028 and U+2029 as in ECMAScript. Columns count code units from 1. An offset out of range is clamped.
func Position(src []uint16, offset int) (line, col int, context string) {
	if offset < 0 || len(src) < offset {
		offset = len(src)
	}

	line = 1
	start := 0
	for i := 0; i < offset; i++ {
		c := src[i]
		if c == '\r' && i+1 < len(src) && src[i+1] == '\n' {
			if i+1 == offset {
				break // at the \n of \r\n
			}
			i++
		}
		if IsNewline(c) {
			line++
			start = i + 1
		}
	}
	col = offset - start + 1
	context = positionContext(src[start:], line, col)
	return
}

func positionContext(src []uint16, line, col int) (context string) {
	end := 0
	for end < len(src) && !IsNewline(src[end]) {
		end++
	}

	// col counts code units, convert it to characters
	rs := []rune(UTF16ToString(src[:end]))
	extra := 0
	if end < col-1 {
		extra = col - 1 - end
		col = len(rs) + 1
	} else {
		col = len([]rune(UTF16ToString(src[:col-1]))) + 1
	}

	// cut off front or rear of context to stay between 60 characters
	limit := 60
	offset := 20
	ellipsisFront := ""
	ellipsisRear := ""
	if limit < len(rs) {
		if col <= limit-offset {
			ellipsisRear = "..."
			rs = rs[:limit-3]
		} else if col >= len(rs)-offset-3 {
			ellipsisFront = "..."
			col -= len(rs) - offset - offset - 4
			rs = rs[len(rs)-offset-offset-4:]
		} else {
			ellipsisFront = "..."
			ellipsisRear = "..."
			rs = rs[col-offset-1 : col+offset]
			col = offset + 1
		}
	}
	for i, r := range rs {
		rs[i] = printableRune(r)
	}

	prefix := ellipsisFront + string(rs[:min(col-1, len(rs))])
	context += fmt.Sprintf("%5d: %s%s%s\n", line, ellipsisFront, string(rs), ellipsisRear)
	context += fmt.Sprintf("%s^", strings.Repeat(" ", 7+runewidth.StringWidth(prefix)+extra))
	return
}
