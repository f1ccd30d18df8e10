package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTokenTypeString(t *testing.T) {
	var tests = []struct {
		tt       TokenType
		expected string
	}{
		{IllegalToken, "Illegal"},
		{EOSToken, "EOS"},
		{TemplateSpanToken, "TemplateSpan"},
		{EscapedStrictReservedWordToken, "EscapedStrictReservedWord"},
		{OpenBraceToken, "{"},
		{EllipsisToken, "..."},
		{GtGtGtEqToken, ">>>="},
		{NullishToken, "??"},
		{IdentifierToken, "Identifier"},
		{AwaitToken, "await"},
		{YieldToken, "yield"},
		{TokenType(100), "Invalid(100)"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			test.String(t, tt.tt.String(), tt.expected)
		})
	}
}

func TestKeywords(t *testing.T) {
	for name, tt := range Keywords {
		test.That(t, IsKeyword(tt), name+" must be a keyword")
		test.String(t, tt.String(), name)
		test.That(t, IsIdentifierName(name), name+" must be an identifier name")
	}
}

func TestErrorKindString(t *testing.T) {
	test.String(t, ErrUnterminatedComment.String(), "unterminated comment")
	test.String(t, ErrInvalidHexEscape.String(), "invalid hexadecimal escape sequence")
	test.String(t, ErrorKind(100).String(), "Invalid(100)")
	test.String(t, (&Error{ErrInvalidNumber, Location{3, 5}}).Error(), "invalid or unexpected numeric literal at 3-5")
	test.String(t, OctalEscape.String(), "octal escape sequence")
}

func TestLocation(t *testing.T) {
	test.T(t, Location{2, 5}.Len(), 3)
	test.T(t, InvalidLocation().Len(), 0)
	test.That(t, Location{4, 4}.IsValid(), "empty location is valid")
	test.That(t, !Location{5, 4}.IsValid())
	test.String(t, Location{2, 5}.String(), "2-5")
	test.String(t, InvalidLocation().String(), "invalid")
}

func TestRegExpFlagsString(t *testing.T) {
	test.String(t, (RegExpSticky | RegExpGlobal | RegExpUnicode).String(), "guy")
	test.String(t, RegExpFlags(0).String(), "")
}
