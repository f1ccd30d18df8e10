package jsscan

import (
	"fmt"

	"github.com/tdewolff/jsscan/js"
)

// Error is a lexical error with a human-readable position. It contains a message and the line, column and context at which the error occurred.
type Error struct {
	Message string
	Line    int
	Column  int
	Context string
}

// NewError creates a new error at a code-unit offset into src.
func NewError(msg string, src []uint16, offset int) *Error {
	line, column, context := Position(src, offset)
	return &Error{
		Message: msg,
		Line:    line,
		Column:  column,
		Context: context,
	}
}

// NewErrorScanner creates a new error from the error recorded by a scanner over src, or returns nil if there is none.
func NewErrorScanner(s *js.Scanner, src []uint16) *Error {
	if !s.HasError() {
		return nil
	}
	return NewError(s.ErrorKind().String(), src, s.ErrorLocation().Begin)
}

// Position returns the line, column, and context of the error.
// Context is the entire line at which the error occurred.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}
