package js

import (
	"github.com/tdewolff/jsscan/buffer"
)

// scan scans the next token into the next slot.
func (s *Scanner) scan() {
	for {
		s.next.loc.Begin = s.sourcePos()
		if tt := s.scanToken(); tt != WhitespaceToken {
			s.next.kind = tt
			break
		}
	}
	s.next.loc.End = s.sourcePos()
}

// scanToken scans a single token, or skips whitespace or a comment and returns WhitespaceToken.
func (s *Scanner) scanToken() TokenType {
	switch s.c0 {
	case '(':
		return s.selectToken(OpenParenToken)
	case ')':
		return s.selectToken(CloseParenToken)
	case '[':
		return s.selectToken(OpenBracketToken)
	case ']':
		return s.selectToken(CloseBracketToken)
	case '{':
		s.braceDepth++
		return s.selectToken(OpenBraceToken)
	case '}':
		if !s.o.ManualTemplates && 0 < len(s.templateDepths) && s.templateDepths[len(s.templateDepths)-1] == s.braceDepth {
			s.advance()
			return s.scanTemplate(true)
		}
		if 0 < s.braceDepth {
			s.braceDepth--
		}
		return s.selectToken(CloseBraceToken)
	case ';':
		return s.selectToken(SemicolonToken)
	case ',':
		return s.selectToken(CommaToken)
	case ':':
		return s.selectToken(ColonToken)
	case '~':
		return s.selectToken(BitNotToken)
	case '?':
		return s.selectIf('?', NullishToken, QuestionToken)
	case '"', '\'':
		return s.scanString()
	case '`':
		s.advance()
		return s.scanTemplate(false)
	case '<':
		// < <= << <<= <!--
		s.advance()
		switch s.c0 {
		case '=':
			return s.selectToken(LtEqToken)
		case '<':
			return s.selectIf('=', LtLtEqToken, LtLtToken)
		case '!':
			if !s.o.Module {
				return s.scanHTMLComment()
			}
		}
		return LtToken
	case '>':
		// > >= >> >>= >>> >>>=
		s.advance()
		if s.c0 == '=' {
			return s.selectToken(GtEqToken)
		} else if s.c0 == '>' {
			s.advance()
			if s.c0 == '=' {
				return s.selectToken(GtGtEqToken)
			} else if s.c0 == '>' {
				return s.selectIf('=', GtGtGtEqToken, GtGtGtToken)
			}
			return GtGtToken
		}
		return GtToken
	case '=':
		// = == === =>
		s.advance()
		if s.c0 == '=' {
			return s.selectIf('=', EqEqEqToken, EqEqToken)
		} else if s.c0 == '>' {
			return s.selectToken(ArrowToken)
		}
		return EqToken
	case '!':
		// ! != !==
		s.advance()
		if s.c0 == '=' {
			return s.selectIf('=', NotEqEqToken, NotEqToken)
		}
		return NotToken
	case '+':
		// + ++ +=
		s.advance()
		if s.c0 == '+' {
			return s.selectToken(IncrToken)
		} else if s.c0 == '=' {
			return s.selectToken(AddEqToken)
		}
		return AddToken
	case '-':
		// - -- --> -=
		s.advance()
		if s.c0 == '-' {
			s.advance()
			if s.c0 == '>' && s.next.afterLineTerminator && !s.o.Module {
				s.foundHTMLComment = true
				return s.skipSingleLineComment()
			}
			return DecrToken
		} else if s.c0 == '=' {
			return s.selectToken(SubEqToken)
		}
		return SubToken
	case '*':
		// * *= ** **=
		s.advance()
		if s.c0 == '*' && s.o.Exponentiation {
			return s.selectIf('=', ExpEqToken, ExpToken)
		} else if s.c0 == '=' {
			return s.selectToken(MulEqToken)
		}
		return MulToken
	case '%':
		return s.selectIf('=', ModEqToken, ModToken)
	case '/':
		// / // /* /=
		s.advance()
		if s.c0 == '/' {
			s.advance()
			if s.c0 == '#' || s.c0 == '@' {
				s.advance()
				s.parseMagicComment()
			}
			return s.skipSingleLineComment()
		} else if s.c0 == '*' {
			s.advance()
			return s.skipMultiLineComment()
		} else if s.c0 == '=' {
			return s.selectToken(DivEqToken)
		}
		return DivToken
	case '&':
		// & && &=
		s.advance()
		if s.c0 == '&' {
			return s.selectToken(AndToken)
		} else if s.c0 == '=' {
			return s.selectToken(BitAndEqToken)
		}
		return BitAndToken
	case '|':
		// | || |=
		s.advance()
		if s.c0 == '|' {
			return s.selectToken(OrToken)
		} else if s.c0 == '=' {
			return s.selectToken(BitOrEqToken)
		}
		return BitOrToken
	case '^':
		return s.selectIf('=', BitXorEqToken, BitXorToken)
	case '.':
		// . ... Number
		s.advance()
		if isDecimalDigit(s.c0) {
			return s.scanNumber(true)
		} else if s.c0 == '.' {
			s.advance()
			if s.c0 == '.' {
				return s.selectToken(EllipsisToken)
			}
			s.pushBack('.')
		}
		return DotToken
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return s.scanNumber(false)
	case '\\':
		return s.scanIdentifierOrKeyword()
	case buffer.EOF:
		return EOSToken
	}
	if isIdentifierStart(s.c0) {
		return s.scanIdentifierOrKeyword()
	}
	return s.skipWhiteSpace()
}

// skipWhiteSpace skips whitespace and line terminators. Any other character is consumed as an IllegalToken.
func (s *Scanner) skipWhiteSpace() TokenType {
	start := s.sourcePos()
	for isWhiteSpace(s.c0) || isLineTerminator(s.c0) {
		if isLineTerminator(s.c0) {
			s.next.afterLineTerminator = true
		}
		s.advance()
	}
	if s.sourcePos() == start {
		s.advance()
		return IllegalToken
	}
	return WhitespaceToken
}

// skipSingleLineComment skips up to but not including the line terminator, since it separates tokens.
func (s *Scanner) skipSingleLineComment() TokenType {
	for s.c0 != buffer.EOF && !isLineTerminator(s.c0) {
		s.advance()
	}
	return WhitespaceToken
}

// skipMultiLineComment skips a comment after its opening /*.
func (s *Scanner) skipMultiLineComment() TokenType {
	for s.c0 != buffer.EOF {
		c := s.c0
		s.advance()
		if isLineTerminator(c) {
			s.next.afterLineTerminator = true
		} else if c == '*' && s.c0 == '/' {
			s.advance()
			return WhitespaceToken
		}
	}
	s.reportError(ErrUnterminatedComment, Location{s.next.loc.Begin, s.sourcePos()})
	return IllegalToken
}

// scanHTMLComment skips <!-- up to the end of the line, or returns LtToken for anything else after <!.
func (s *Scanner) scanHTMLComment() TokenType {
	s.advance()
	if s.c0 == '-' {
		s.advance()
		if s.c0 == '-' {
			s.advance()
			s.foundHTMLComment = true
			return s.skipSingleLineComment()
		}
		s.pushBack('-')
	}
	s.pushBack('!')
	return LtToken
}

// parseMagicComment parses a //# name=value comment after the # or @. Only sourceURL and sourceMappingURL are recognized. A value containing quotes or followed by anything but whitespace is cleared.
func (s *Scanner) parseMagicComment() {
	if !isWhiteSpace(s.c0) {
		return
	}
	s.advance()

	s.magicName.Reset()
	for s.c0 != buffer.EOF && !isWhiteSpace(s.c0) && !isLineTerminator(s.c0) && s.c0 != '=' {
		s.magicName.AddChar(s.c0)
		s.advance()
	}

	var value *buffer.Literal
	if s.magicName.IsContextualKeyword("sourceURL") {
		value = &s.sourceURL
	} else if s.magicName.IsContextualKeyword("sourceMappingURL") {
		value = &s.sourceMappingURL
	} else {
		return
	}
	if s.c0 != '=' {
		return
	}
	value.Reset()
	s.advance()
	for isWhiteSpace(s.c0) {
		s.advance()
	}
	for s.c0 != buffer.EOF && !isLineTerminator(s.c0) {
		if s.c0 == '"' || s.c0 == '\'' {
			value.Reset()
			return
		} else if isWhiteSpace(s.c0) {
			break
		}
		value.AddChar(s.c0)
		s.advance()
	}
	for s.c0 != buffer.EOF && !isLineTerminator(s.c0) {
		if !isWhiteSpace(s.c0) {
			value.Reset()
			return
		}
		s.advance()
	}
}
