package js

import (
	"github.com/tdewolff/jsscan/buffer"
)

// RegExpFlags is a set of regular expression flags.
type RegExpFlags uint8

// RegExpFlags values.
const (
	RegExpGlobal RegExpFlags = 1 << iota
	RegExpIgnoreCase
	RegExpMultiline
	RegExpUnicode
	RegExpSticky
)

var regExpFlagChars = []struct {
	c    byte
	flag RegExpFlags
}{
	{'g', RegExpGlobal},
	{'i', RegExpIgnoreCase},
	{'m', RegExpMultiline},
	{'u', RegExpUnicode},
	{'y', RegExpSticky},
}

func (flags RegExpFlags) String() string {
	b := make([]byte, 0, len(regExpFlagChars))
	for _, f := range regExpFlagChars {
		if flags&f.flag != 0 {
			b = append(b, f.c)
		}
	}
	return string(b)
}

func regExpFlag(c int32) RegExpFlags {
	for _, f := range regExpFlagChars {
		if int32(f.c) == c {
			return f.flag
		}
	}
	return 0
}

// ScanRegExpPattern rescans the next token, which must be / or /=, as the body of a regular expression literal. The pattern without slashes becomes the literal of the next token, which becomes a RegExpToken. It returns false if the pattern is unterminated. It must not be called after PeekAhead.
// The next token decides whether the pattern starts with =, seenEqual only documents what the caller saw.
func (s *Scanner) ScanRegExpPattern(seenEqual bool) bool {
	if s.nextNext.kind != UninitializedToken || s.next.kind != DivToken && s.next.kind != DivEqToken {
		return false
	}
	seenEqual = s.next.kind == DivEqToken
	lit := s.startLiteral()
	defer lit.close()

	s.next.escaped = false
	s.next.smi = -1
	s.next.raw = noLiteral
	s.next.loc.Begin = s.sourcePos() - 1
	if seenEqual {
		s.next.loc.Begin--
		s.addLiteralChar('=')
	}

	inClass := false
	for s.c0 != '/' || inClass {
		if s.c0 == buffer.EOF || isLineTerminator(s.c0) {
			return s.unterminatedRegExp()
		}
		if s.c0 == '\\' {
			s.addLiteralCharAdvance()
			if s.c0 == buffer.EOF || isLineTerminator(s.c0) {
				return s.unterminatedRegExp()
			}
		} else if s.c0 == '[' {
			inClass = true
		} else if s.c0 == ']' {
			inClass = false
		}
		s.addLiteralCharAdvance()
	}
	s.advance()
	lit.complete()

	s.next.kind = RegExpToken
	s.next.loc.End = s.sourcePos()
	return true
}

func (s *Scanner) unterminatedRegExp() bool {
	s.next.kind = IllegalToken
	s.next.loc.End = s.sourcePos()
	s.reportError(ErrUnterminatedRegExp, s.next.loc)
	return false
}

// ScanRegExpFlags scans the flags that follow a pattern scanned by ScanRegExpPattern. The flags become the raw literal of the next token. It returns false for unknown or repeated flags. It must not be called after PeekAhead.
func (s *Scanner) ScanRegExpFlags() (RegExpFlags, bool) {
	if s.nextNext.kind != UninitializedToken || s.next.kind != RegExpToken {
		return 0, false
	}
	lit := literalScope{s: s, literal: noLiteral, raw: noLiteral}
	lit.startRaw()
	defer lit.close()

	flags := RegExpFlags(0)
	for isIdentifierPart(s.c0) || s.c0 == '\\' {
		flag := regExpFlag(s.c0)
		if flag == 0 || flags&flag != 0 {
			pos := s.sourcePos()
			s.reportErrorAt(ErrInvalidRegExpFlags, pos)
			s.next.kind = IllegalToken
			s.next.loc.End = pos
			return 0, false
		}
		flags |= flag
		s.addRawChar(s.c0)
		s.advance()
	}
	lit.complete()
	s.next.loc.End = s.sourcePos()
	return flags, true
}

////////////////////////////////////////////////////////////////

// ScanTemplateStart returns the kind of the next token if it starts a template literal, or IllegalToken otherwise. Template literals are scanned when the scanner encounters a backtick.
func (s *Scanner) ScanTemplateStart() TokenType {
	if IsTemplate(s.next.kind) {
		return s.next.kind
	}
	return IllegalToken
}

// ScanTemplateContinuation rescans the next token, a } that closes a template substitution, as the continuation of the template. It must not be called after PeekAhead. Unless Options.ManualTemplates is set, the scanner already does this by itself and the current template token is returned.
func (s *Scanner) ScanTemplateContinuation() TokenType {
	if IsTemplate(s.next.kind) {
		return s.next.kind
	} else if s.next.kind != CloseBraceToken || s.nextNext.kind != UninitializedToken {
		return IllegalToken
	}
	s.next.escaped = false
	s.next.kind = s.scanTemplateSpan()
	s.next.loc.End = s.sourcePos()
	return s.next.kind
}
