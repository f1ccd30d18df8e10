package strconv

import (
	"math/big"
)

// ParseLiteral parses a complete ECMAScript numeric literal: decimal, hexadecimal (0x), octal (0o), binary (0b) or legacy octal with a leading zero (017). Decimal literals with a leading zero that contain an 8 or 9 (089) are decimal. It returns false if b is not a valid literal.
func ParseLiteral(b []byte) (float64, bool) {
	if 2 <= len(b) && b[0] == '0' {
		base := 0
		switch b[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			return parseRadix(b[2:], base)
		} else if isImplicitOctal(b) {
			return parseRadix(b[1:], 8)
		}
	}
	f, n := ParseDecimal(b)
	if n == 0 || n != len(b) {
		return 0, false
	}
	return f, true
}

func isImplicitOctal(b []byte) bool {
	for _, c := range b[1:] {
		if c < '0' || '7' < c {
			return false
		}
	}
	return true
}

// parseRadix parses digits in the given base. Values beyond the float64 range are +Inf, otherwise they are rounded to nearest even.
func parseRadix(b []byte, base int) (float64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	for _, c := range b {
		if c == '_' || c == '+' || c == '-' {
			return 0, false
		}
	}
	i, ok := new(big.Int).SetString(string(b), base)
	if !ok {
		return 0, false
	}
	if i.IsUint64() {
		if u := i.Uint64(); u < 1<<53 {
			return float64(u), true
		}
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f, true
}

// IsCanonical returns true if b is a decimal literal that is already in the form AppendNumber produces. It is a fast approximation that accepts at most 15 characters, no leading zeros except a single zero integer part, and no trailing zeros after the decimal point. It may return false for literals that are canonical.
func IsCanonical(b []byte) bool {
	if len(b) == 0 || 15 < len(b) {
		return false
	}
	i := 0
	if b[0] == '0' {
		i++
	} else {
		for i < len(b) && '0' <= b[i] && b[i] <= '9' {
			i++
		}
		if i == 0 {
			return false
		}
	}
	if i == len(b) {
		return true
	} else if b[i] != '.' {
		return false
	}
	i++
	if b[0] == '0' {
		// 0.0000001 is written as 1e-7
		zeros := 0
		for i+zeros < len(b) && b[i+zeros] == '0' {
			zeros++
		}
		if 5 < zeros {
			return false
		}
	}
	trailingZero := true
	for ; i < len(b); i++ {
		if b[i] < '0' || '9' < b[i] {
			return false
		}
		trailingZero = b[i] == '0'
	}
	return !trailingZero
}
