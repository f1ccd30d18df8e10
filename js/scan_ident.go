package js

// scanIdentifierOrKeyword scans an identifier name, decoding \u escapes into the literal.
func (s *Scanner) scanIdentifierOrKeyword() TokenType {
	lit := s.startLiteral()
	defer lit.close()

	escaped := false
	if s.c0 == '\\' {
		escaped = true
		begin := s.sourcePos()
		c := s.scanIdentifierUnicodeEscape()
		if !isIdentifierStart(c) {
			s.reportError(ErrInvalidUnicodeEscape, Location{begin, s.sourcePos()})
			return IllegalToken
		}
		s.addLiteralChar(c)
	} else {
		s.addLiteralCharAdvance()
	}

	for {
		if s.c0 == '\\' {
			escaped = true
			begin := s.sourcePos()
			c := s.scanIdentifierUnicodeEscape()
			if !isIdentifierPart(c) {
				s.reportError(ErrInvalidUnicodeEscape, Location{begin, s.sourcePos()})
				return IllegalToken
			}
			s.addLiteralChar(c)
		} else if isIdentifierPart(s.c0) {
			s.addLiteralCharAdvance()
		} else {
			break
		}
	}
	lit.complete()
	s.next.escaped = escaped

	l := s.literalOf(&s.next)
	if !l.OneByte() {
		return IdentifierToken
	}
	tt, ok := Keywords[string(l.OneByteLiteral())]
	if !ok {
		return IdentifierToken
	} else if !escaped {
		return tt
	}

	switch {
	case tt == AsyncToken || tt == AwaitToken:
		return IdentifierToken
	case IsFutureStrictReserved(tt):
		return EscapedStrictReservedWordToken
	}
	return EscapedKeywordToken
}

// scanIdentifierUnicodeEscape decodes \uXXXX or \u{X...} in an identifier, it returns -1 when invalid.
func (s *Scanner) scanIdentifierUnicodeEscape() int32 {
	begin := s.sourcePos()
	s.advance()
	if s.c0 != 'u' {
		return -1
	}
	s.advance()
	return s.scanUnicodeEscape(checkSurrogate, begin)
}
