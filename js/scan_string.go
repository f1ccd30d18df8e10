package js

import (
	"github.com/tdewolff/jsscan/buffer"
)

func (s *Scanner) scanString() TokenType {
	quote := s.c0
	s.advance()
	lit := s.startLiteral()
	defer lit.close()

	for s.c0 != quote {
		if s.c0 == buffer.EOF || isLineTerminator(s.c0) {
			s.reportError(ErrUnterminatedString, Location{s.next.loc.Begin, s.sourcePos()})
			return IllegalToken
		}
		c := s.c0
		s.advance()
		if c == '\\' {
			s.next.escaped = true
			if s.c0 == buffer.EOF {
				continue
			} else if !s.scanEscape(checkSurrogate, false) {
				return IllegalToken
			}
		} else {
			s.addLiteralChar(c)
		}
	}
	s.advance()
	lit.complete()
	return StringToken
}

// scanEscape decodes the escape sequence after a backslash into the literal. It returns false if the sequence is invalid, in which case an error has been reported.
func (s *Scanner) scanEscape(mode advanceMode, inTemplate bool) bool {
	begin := s.sourcePos() - 1
	c := s.c0
	s.advanceWith(mode)

	// line continuation
	if !inTemplate && isLineTerminator(c) {
		if c == '\r' && s.c0 == '\n' || c == '\n' && s.c0 == '\r' {
			s.advance()
		}
		return true
	}

	switch c {
	case 'b':
		c = '\b'
	case 'f':
		c = '\f'
	case 'n':
		c = '\n'
	case 'r':
		c = '\r'
	case 't':
		c = '\t'
	case 'v':
		c = '\v'
	case 'u':
		if c = s.scanUnicodeEscape(mode, begin); c < 0 {
			return false
		}
	case 'x':
		if c = s.scanHexNumber(mode, 2, begin, ErrInvalidHexEscape); c < 0 {
			return false
		}
	case '0', '1', '2', '3', '4', '5', '6', '7':
		if c = s.scanOctalEscape(mode, c, begin, inTemplate); c < 0 {
			return false
		}
	case '8', '9':
		if inTemplate {
			s.reportError(ErrTemplateOctalEscape, Location{begin, s.sourcePos()})
			return false
		}
		s.recordOctal(Location{begin, s.sourcePos()}, Octal8Or9Escape)
	}
	// other characters, including quotes and the backslash, stand for themselves
	s.addLiteralChar(c)
	return true
}

// scanOctalEscape decodes up to three octal digits with a value of at most 255. Anything but a \0 that is not followed by a decimal digit is recorded as a legacy octal escape, or is an error in templates.
func (s *Scanner) scanOctalEscape(mode advanceMode, c int32, begin int, inTemplate bool) int32 {
	x := c - '0'
	i := 0
	for ; i < 2; i++ {
		d := s.c0 - '0'
		if d < 0 || 7 < d || 256 <= x*8+d {
			break
		}
		x = x*8 + d
		s.advanceWith(mode)
	}
	if c == '0' && i == 0 && !isDecimalDigit(s.c0) {
		return x
	} else if inTemplate {
		s.reportError(ErrTemplateOctalEscape, Location{begin, s.sourcePos()})
		return -1
	}
	s.recordOctal(Location{begin, s.sourcePos()}, OctalEscape)
	return x
}

// scanHexNumber decodes exactly n hexadecimal digits.
func (s *Scanner) scanHexNumber(mode advanceMode, n int, begin int, kind ErrorKind) int32 {
	x := int32(0)
	for i := 0; i < n; i++ {
		d := hexValue(s.c0)
		if d < 0 {
			s.reportError(kind, Location{begin, begin + n + 2})
			return -1
		}
		x = x*16 + d
		s.advanceWith(mode)
	}
	return x
}

// scanUnicodeEscape decodes XXXX or {X...} after \u.
func (s *Scanner) scanUnicodeEscape(mode advanceMode, begin int) int32 {
	if s.c0 != '{' {
		return s.scanHexNumber(mode, 4, begin, ErrInvalidUnicodeEscape)
	}
	s.advanceWith(mode)

	x := int32(0)
	d := hexValue(s.c0)
	if d < 0 {
		s.reportErrorAt(ErrInvalidUnicodeEscape, s.sourcePos())
		return -1
	}
	for 0 <= d {
		x = x*16 + d
		if 0x10FFFF < x {
			s.reportError(ErrUndefinedUnicodeCodePoint, Location{begin, s.sourcePos() + 1})
			return -1
		}
		s.advanceWith(mode)
		d = hexValue(s.c0)
	}
	if s.c0 != '}' {
		s.reportErrorAt(ErrInvalidUnicodeEscape, s.sourcePos())
		return -1
	}
	s.advanceWith(mode)
	return x
}

////////////////////////////////////////////////////////////////

// scanTemplate scans a template span after ` or after the } that closes a substitution, and keeps track of open substitutions.
func (s *Scanner) scanTemplate(continuation bool) TokenType {
	tt := s.scanTemplateSpan()
	if s.o.ManualTemplates {
		return tt
	}
	if !continuation && tt == TemplateSpanToken {
		s.templateDepths = append(s.templateDepths, s.braceDepth)
	} else if continuation && tt != TemplateSpanToken {
		s.templateDepths = s.templateDepths[:len(s.templateDepths)-1]
	}
	return tt
}

// scanTemplateSpan scans template characters up to and including ${ or `. The cooked value goes into the literal and the raw source text into the raw literal, where CR and CR LF are normalized to LF.
func (s *Scanner) scanTemplateSpan() TokenType {
	lit := s.startLiteral()
	lit.startRaw()
	defer lit.close()

	const mode = checkSurrogate | captureRaw
	for {
		c := s.c0
		if c == buffer.EOF {
			s.reportError(ErrUnterminatedTemplate, Location{s.next.loc.Begin, s.sourcePos()})
			return IllegalToken
		}
		s.advanceWith(mode)

		if c == '`' {
			s.reduceRawLength(1)
			lit.complete()
			return TemplateTailToken
		} else if c == '$' && s.c0 == '{' {
			s.advance()
			s.reduceRawLength(1)
			lit.complete()
			return TemplateSpanToken
		} else if c == '\\' {
			s.next.escaped = true
			if isLineTerminator(s.c0) {
				// line continuations are empty in the cooked value
				last := s.c0
				s.advanceWith(mode)
				if last == '\r' {
					s.normalizeRawCR(mode)
				}
			} else if s.c0 != buffer.EOF && !s.scanEscape(mode, true) {
				return IllegalToken
			}
		} else {
			if c == '\r' {
				s.normalizeRawCR(mode)
				c = '\n'
			}
			s.addLiteralChar(c)
		}
	}
}

// normalizeRawCR replaces the CR just added to the raw literal, together with an LF that follows, by a single LF.
func (s *Scanner) normalizeRawCR(mode advanceMode) {
	s.reduceRawLength(1)
	if s.c0 == '\n' {
		s.advanceWith(mode)
	} else {
		s.addRawChar('\n')
	}
}
