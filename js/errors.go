package js

import (
	"fmt"
	"strconv"
)

// ErrorKind is the kind of lexical error recorded by the Scanner.
type ErrorKind uint8

// ErrorKind values.
const (
	ErrNone ErrorKind = iota
	ErrUnterminatedString
	ErrUnterminatedTemplate
	ErrUnterminatedComment
	ErrUnterminatedRegExp
	ErrInvalidUnicodeEscape
	ErrUndefinedUnicodeCodePoint
	ErrInvalidHexEscape
	ErrTemplateOctalEscape
	ErrInvalidNumber
	ErrInvalidRegExpFlags
)

func (kind ErrorKind) String() string {
	switch kind {
	case ErrNone:
		return "none"
	case ErrUnterminatedString:
		return "unterminated string literal"
	case ErrUnterminatedTemplate:
		return "unterminated template literal"
	case ErrUnterminatedComment:
		return "unterminated comment"
	case ErrUnterminatedRegExp:
		return "unterminated regular expression"
	case ErrInvalidUnicodeEscape:
		return "invalid Unicode escape sequence"
	case ErrUndefinedUnicodeCodePoint:
		return "undefined Unicode code point"
	case ErrInvalidHexEscape:
		return "invalid hexadecimal escape sequence"
	case ErrTemplateOctalEscape:
		return "octal escape sequence in template"
	case ErrInvalidNumber:
		return "invalid or unexpected numeric literal"
	case ErrInvalidRegExpFlags:
		return "invalid regular expression flags"
	}
	return "Invalid(" + strconv.Itoa(int(kind)) + ")"
}

// Error is the lexical error returned by Scanner.Err.
type Error struct {
	Kind     ErrorKind
	Location Location
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s at %v", err.Kind, err.Location)
}

// OctalKind is the kind of legacy octal syntax recorded for strict-mode checks.
type OctalKind uint8

// OctalKind values.
const (
	OctalNone OctalKind = iota
	OctalLiteral
	OctalEscape
	Octal8Or9Escape
	DecimalWithLeadingZero
)

func (kind OctalKind) String() string {
	switch kind {
	case OctalNone:
		return "none"
	case OctalLiteral:
		return "octal literal"
	case OctalEscape:
		return "octal escape sequence"
	case Octal8Or9Escape:
		return "\\8 or \\9 escape sequence"
	case DecimalWithLeadingZero:
		return "decimal with leading zero"
	}
	return "Invalid(" + strconv.Itoa(int(kind)) + ")"
}
