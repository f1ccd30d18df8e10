package js

import (
	"math"
)

type numberKind uint8

const (
	decimalNumber numberKind = iota
	decimalWithLeadingZeroNumber
	hexNumber
	octalNumber
	implicitOctalNumber
	binaryNumber
)

func (s *Scanner) scanDigits(isDigit func(int32) bool) bool {
	if !isDigit(s.c0) {
		return false
	}
	for isDigit(s.c0) {
		s.addLiteralCharAdvance()
	}
	return true
}

// scanNumber scans a numeric literal, c0 is its first digit or the first digit after a leading period.
func (s *Scanner) scanNumber(seenPeriod bool) TokenType {
	lit := s.startLiteral()
	defer lit.close()

	kind := decimalNumber
	start := s.sourcePos()
	if seenPeriod {
		start--
		s.addLiteralChar('.')
		s.scanDigits(isDecimalDigit)
	} else {
		atStart := true
		if s.c0 == '0' {
			s.addLiteralCharAdvance()
			switch s.c0 {
			case 'x', 'X':
				kind = hexNumber
				s.addLiteralCharAdvance()
				if !s.scanDigits(isHexDigit) {
					return s.invalidNumber(start)
				}
			case 'o', 'O':
				kind = octalNumber
				s.addLiteralCharAdvance()
				if !s.scanDigits(isOctalDigit) {
					return s.invalidNumber(start)
				}
			case 'b', 'B':
				kind = binaryNumber
				s.addLiteralCharAdvance()
				if !s.scanDigits(isBinaryDigit) {
					return s.invalidNumber(start)
				}
			case '0', '1', '2', '3', '4', '5', '6', '7':
				kind = implicitOctalNumber
				for isOctalDigit(s.c0) {
					s.addLiteralCharAdvance()
				}
				if s.c0 == '8' || s.c0 == '9' {
					kind = decimalWithLeadingZeroNumber
					atStart = false
				}
			case '8', '9':
				kind = decimalWithLeadingZeroNumber
			}
		}

		if kind == decimalNumber || kind == decimalWithLeadingZeroNumber {
			if atStart {
				// small integers are converted while scanning
				value := uint64(0)
				n := s.literalOf(&s.next).Length()
				for isDecimalDigit(s.c0) {
					if n < 11 {
						value = 10*value + uint64(s.c0-'0')
					}
					n++
					s.addLiteralCharAdvance()
				}
				if n <= 10 && value <= math.MaxInt32 && s.c0 != '.' && s.c0 != 'e' && s.c0 != 'E' {
					if !s.numberEnds() {
						return s.invalidNumber(start)
					}
					s.next.smi = int(value)
					lit.complete()
					if kind == decimalWithLeadingZeroNumber {
						s.recordOctal(Location{start, s.sourcePos()}, DecimalWithLeadingZero)
					}
					return NumericToken
				}
			}
			s.scanDigits(isDecimalDigit)
			if s.c0 == '.' {
				s.addLiteralCharAdvance()
				s.scanDigits(isDecimalDigit)
			}
		}
	}

	if s.c0 == 'e' || s.c0 == 'E' {
		if kind != decimalNumber && kind != decimalWithLeadingZeroNumber {
			return s.invalidNumber(start)
		}
		s.addLiteralCharAdvance()
		if s.c0 == '+' || s.c0 == '-' {
			s.addLiteralCharAdvance()
		}
		if !s.scanDigits(isDecimalDigit) {
			return s.invalidNumber(start)
		}
	}
	if !s.numberEnds() {
		return s.invalidNumber(start)
	}
	lit.complete()

	if kind == implicitOctalNumber {
		s.recordOctal(Location{start, s.sourcePos()}, OctalLiteral)
	} else if kind == decimalWithLeadingZeroNumber {
		s.recordOctal(Location{start, s.sourcePos()}, DecimalWithLeadingZero)
	}
	return NumericToken
}

// numberEnds returns true if c0 may follow a numeric literal, which excludes digits and identifier starts such as in 3in.
func (s *Scanner) numberEnds() bool {
	return !isDecimalDigit(s.c0) && !isIdentifierStart(s.c0) && s.c0 != '\\'
}

func (s *Scanner) invalidNumber(start int) TokenType {
	s.reportError(ErrInvalidNumber, Location{start, s.sourcePos()})
	return IllegalToken
}
