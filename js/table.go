package js

import (
	"unicode"
)

// Keywords maps reserved words, including contextual and strict-mode ones, to their token type.
var Keywords = map[string]TokenType{
	"async":      AsyncToken,
	"await":      AwaitToken,
	"break":      BreakToken,
	"case":       CaseToken,
	"catch":      CatchToken,
	"class":      ClassToken,
	"const":      ConstToken,
	"continue":   ContinueToken,
	"debugger":   DebuggerToken,
	"default":    DefaultToken,
	"delete":     DeleteToken,
	"do":         DoToken,
	"else":       ElseToken,
	"enum":       EnumToken,
	"export":     ExportToken,
	"extends":    ExtendsToken,
	"false":      FalseToken,
	"finally":    FinallyToken,
	"for":        ForToken,
	"function":   FunctionToken,
	"if":         IfToken,
	"implements": ImplementsToken,
	"import":     ImportToken,
	"in":         InToken,
	"instanceof": InstanceofToken,
	"interface":  InterfaceToken,
	"let":        LetToken,
	"new":        NewToken,
	"null":       NullToken,
	"package":    PackageToken,
	"private":    PrivateToken,
	"protected":  ProtectedToken,
	"public":     PublicToken,
	"return":     ReturnToken,
	"static":     StaticToken,
	"super":      SuperToken,
	"switch":     SwitchToken,
	"this":       ThisToken,
	"throw":      ThrowToken,
	"true":       TrueToken,
	"try":        TryToken,
	"typeof":     TypeofToken,
	"var":        VarToken,
	"void":       VoidToken,
	"while":      WhileToken,
	"with":       WithToken,
	"yield":      YieldToken,
}

var identifierStart = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start}
var identifierContinue = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue}

var identifierStartTable = [128]bool{
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, true, true, true, true, true, true, true, // A, B, C, D, E, F, G
	true, true, true, true, true, true, true, true, // H, I, J, K, L, M, N, O
	true, true, true, true, true, true, true, true, // P, Q, R, S, T, U, V, W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a, b, c, d, e, f, g
	true, true, true, true, true, true, true, true, // h, i, j, k, l, m, n, o
	true, true, true, true, true, true, true, true, // p, q, r, s, t, u, v, w
	true, true, true, false, false, false, false, false, // x, y, z
}

var identifierTable = [128]bool{
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false,

	false, false, false, false, true, false, false, false, // $
	false, false, false, false, false, false, false, false,
	true, true, true, true, true, true, true, true, // 0, 1, 2, 3, 4, 5, 6, 7
	true, true, false, false, false, false, false, false, // 8, 9

	false, true, true, true, true, true, true, true, // A, B, C, D, E, F, G
	true, true, true, true, true, true, true, true, // H, I, J, K, L, M, N, O
	true, true, true, true, true, true, true, true, // P, Q, R, S, T, U, V, W
	true, true, true, false, false, false, false, true, // X, Y, Z, _

	false, true, true, true, true, true, true, true, // a, b, c, d, e, f, g
	true, true, true, true, true, true, true, true, // h, i, j, k, l, m, n, o
	true, true, true, true, true, true, true, true, // p, q, r, s, t, u, v, w
	true, true, true, false, false, false, false, false, // x, y, z
}

////////////////////////////////////////////////////////////////

func isIdentifierStart(c int32) bool {
	if c < 0 {
		return false
	} else if c < 0x80 {
		return identifierStartTable[c]
	}
	return unicode.IsOneOf(identifierStart, rune(c))
}

func isIdentifierPart(c int32) bool {
	if c < 0 {
		return false
	} else if c < 0x80 {
		return identifierTable[c]
	}
	return c == '\u200C' || c == '\u200D' || unicode.IsOneOf(identifierContinue, rune(c))
}

func isLineTerminator(c int32) bool {
	return c == '\n' || c == '\r' || c == '\u2028' || c == '\u2029'
}

func isWhiteSpace(c int32) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\u00A0', '\uFEFF':
		return true
	}
	return 0x80 <= c && unicode.Is(unicode.Zs, rune(c))
}

func isDecimalDigit(c int32) bool {
	return '0' <= c && c <= '9'
}

func isOctalDigit(c int32) bool {
	return '0' <= c && c <= '7'
}

func isBinaryDigit(c int32) bool {
	return c == '0' || c == '1'
}

func isHexDigit(c int32) bool {
	return hexValue(c) != -1
}

func hexValue(c int32) int32 {
	if '0' <= c && c <= '9' {
		return c - '0'
	} else if 'a' <= c && c <= 'f' {
		return c - 'a' + 10
	} else if 'A' <= c && c <= 'F' {
		return c - 'A' + 10
	}
	return -1
}

// IsIdentifierName returns true if s is a valid identifier name without escapes.
func IsIdentifierName(s string) bool {
	for i, r := range s {
		if i == 0 && !isIdentifierStart(r) || i != 0 && !isIdentifierPart(r) {
			return false
		}
	}
	return s != ""
}
