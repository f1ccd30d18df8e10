// Package js is an ECMAScript 2015 scanner over UTF-16 code units. It turns a buffer.Stream into tokens with their literal values, for use by a parser that drives it with Next and Peek.
package js

import (
	"strconv"
)

// TokenType determines the type of token, eg. a number or a semicolon.
type TokenType uint32

// TokenType values.
const (
	UninitializedToken TokenType = iota // empty second lookahead slot
	IllegalToken                        // unexpected character or malformed literal
	EOSToken                            // end of source
	WhitespaceToken                     // only used internally while skipping whitespace and comments
	NumericToken
	StringToken
	TemplateSpanToken // `...${ or }...${
	TemplateTailToken // `...` or }...`
	RegExpToken       // only after ScanRegExpPattern
	EscapedKeywordToken
	EscapedStrictReservedWordToken
)

const (
	PunctuatorToken   TokenType = 0x1000 + iota
	OpenBraceToken              // {
	CloseBraceToken             // }
	OpenParenToken              // (
	CloseParenToken             // )
	OpenBracketToken            // [
	CloseBracketToken           // ]
	DotToken                    // .
	SemicolonToken              // ;
	CommaToken                  // ,
	QuestionToken               // ?
	ColonToken                  // :
	ArrowToken                  // =>
	EllipsisToken               // ...
)

const (
	OperatorToken TokenType = 0x3000 + iota
	EqToken                 // =
	EqEqToken               // ==
	EqEqEqToken             // ===
	NotToken                // !
	NotEqToken              // !=
	NotEqEqToken            // !==
	LtToken                 // <
	LtEqToken               // <=
	LtLtToken               // <<
	LtLtEqToken             // <<=
	GtToken                 // >
	GtEqToken               // >=
	GtGtToken               // >>
	GtGtEqToken             // >>=
	GtGtGtToken             // >>>
	GtGtGtEqToken           // >>>=
	AddToken                // +
	AddEqToken              // +=
	IncrToken               // ++
	SubToken                // -
	SubEqToken              // -=
	DecrToken               // --
	MulToken                // *
	MulEqToken              // *=
	ExpToken                // **
	ExpEqToken              // **=
	DivToken                // /
	DivEqToken              // /=
	ModToken                // %
	ModEqToken              // %=
	BitAndToken             // &
	BitOrToken              // |
	BitXorToken             // ^
	BitNotToken             // ~
	BitAndEqToken           // &=
	BitOrEqToken            // |=
	BitXorEqToken           // ^=
	AndToken                // &&
	OrToken                 // ||
	NullishToken            // ??
)

const (
	IdentifierToken TokenType = 0x4000 + iota
	AwaitToken
	AsyncToken
	BreakToken
	CaseToken
	CatchToken
	ClassToken
	ConstToken
	ContinueToken
	DebuggerToken
	DefaultToken
	DeleteToken
	DoToken
	ElseToken
	EnumToken
	ExportToken
	ExtendsToken
	FalseToken
	FinallyToken
	ForToken
	FunctionToken
	IfToken
	ImplementsToken
	ImportToken
	InToken
	InstanceofToken
	InterfaceToken
	LetToken
	NewToken
	NullToken
	PackageToken
	PrivateToken
	ProtectedToken
	PublicToken
	ReturnToken
	StaticToken
	SuperToken
	SwitchToken
	ThisToken
	ThrowToken
	TrueToken
	TryToken
	TypeofToken
	VarToken
	VoidToken
	WhileToken
	WithToken
	YieldToken
)

// IsPunctuator returns true for punctuators that are not operators, such as braces and the arrow.
func IsPunctuator(tt TokenType) bool {
	return tt&0x1000 != 0
}

// IsOperator returns true for arithmetic, comparison, logical and assignment operators.
func IsOperator(tt TokenType) bool {
	return tt&0x2000 != 0
}

// IsIdentifier returns true for identifiers and unescaped keywords.
func IsIdentifier(tt TokenType) bool {
	return tt&0x4000 != 0
}

// IsKeyword returns true for unescaped keywords, including the contextual async and await.
func IsKeyword(tt TokenType) bool {
	return IsIdentifier(tt) && tt != IdentifierToken
}

// IsFutureStrictReserved returns true for words that are only reserved in strict mode code.
func IsFutureStrictReserved(tt TokenType) bool {
	switch tt {
	case ImplementsToken, InterfaceToken, LetToken, PackageToken, PrivateToken, ProtectedToken, PublicToken, StaticToken, YieldToken:
		return true
	}
	return false
}

// IsTemplate returns true for template spans and tails.
func IsTemplate(tt TokenType) bool {
	return tt == TemplateSpanToken || tt == TemplateTailToken
}

// String returns the string representation of a TokenType.
func (tt TokenType) String() string {
	switch tt {
	case UninitializedToken:
		return "Uninitialized"
	case IllegalToken:
		return "Illegal"
	case EOSToken:
		return "EOS"
	case WhitespaceToken:
		return "Whitespace"
	case NumericToken:
		return "Numeric"
	case StringToken:
		return "String"
	case TemplateSpanToken:
		return "TemplateSpan"
	case TemplateTailToken:
		return "TemplateTail"
	case RegExpToken:
		return "RegExp"
	case EscapedKeywordToken:
		return "EscapedKeyword"
	case EscapedStrictReservedWordToken:
		return "EscapedStrictReservedWord"
	case PunctuatorToken:
		return "Punctuator"
	case OpenBraceToken:
		return "{"
	case CloseBraceToken:
		return "}"
	case OpenParenToken:
		return "("
	case CloseParenToken:
		return ")"
	case OpenBracketToken:
		return "["
	case CloseBracketToken:
		return "]"
	case DotToken:
		return "."
	case SemicolonToken:
		return ";"
	case CommaToken:
		return ","
	case QuestionToken:
		return "?"
	case ColonToken:
		return ":"
	case ArrowToken:
		return "=>"
	case EllipsisToken:
		return "..."
	case OperatorToken:
		return "Operator"
	case EqToken:
		return "="
	case EqEqToken:
		return "=="
	case EqEqEqToken:
		return "==="
	case NotToken:
		return "!"
	case NotEqToken:
		return "!="
	case NotEqEqToken:
		return "!=="
	case LtToken:
		return "<"
	case LtEqToken:
		return "<="
	case LtLtToken:
		return "<<"
	case LtLtEqToken:
		return "<<="
	case GtToken:
		return ">"
	case GtEqToken:
		return ">="
	case GtGtToken:
		return ">>"
	case GtGtEqToken:
		return ">>="
	case GtGtGtToken:
		return ">>>"
	case GtGtGtEqToken:
		return ">>>="
	case AddToken:
		return "+"
	case AddEqToken:
		return "+="
	case IncrToken:
		return "++"
	case SubToken:
		return "-"
	case SubEqToken:
		return "-="
	case DecrToken:
		return "--"
	case MulToken:
		return "*"
	case MulEqToken:
		return "*="
	case ExpToken:
		return "**"
	case ExpEqToken:
		return "**="
	case DivToken:
		return "/"
	case DivEqToken:
		return "/="
	case ModToken:
		return "%"
	case ModEqToken:
		return "%="
	case BitAndToken:
		return "&"
	case BitOrToken:
		return "|"
	case BitXorToken:
		return "^"
	case BitNotToken:
		return "~"
	case BitAndEqToken:
		return "&="
	case BitOrEqToken:
		return "|="
	case BitXorEqToken:
		return "^="
	case AndToken:
		return "&&"
	case OrToken:
		return "||"
	case NullishToken:
		return "??"
	case IdentifierToken:
		return "Identifier"
	}
	for name, keyword := range Keywords {
		if keyword == tt {
			return name
		}
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}
