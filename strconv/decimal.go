// Package strconv converts ECMAScript numeric literals to float64 values and back.
package strconv

import (
	"errors"
	"math"
	strconvStd "strconv"
)

// ParseDecimal parses a decimal number literal at the start of b, such as 5, 5.1, .5 or 1e-7. It returns the value and the number of bytes consumed, which is zero if b does not start with a decimal literal. Values that overflow are returned as +Inf.
func ParseDecimal(b []byte) (float64, int) {
	n := decimalEnd(b)
	if n == 0 {
		return 0, 0
	}
	f, err := strconvStd.ParseFloat(string(b[:n]), 64)
	if err != nil && !errors.Is(err, strconvStd.ErrRange) {
		return 0, 0
	}
	return f, n
}

// decimalEnd returns the length of the decimal literal at the start of b.
func decimalEnd(b []byte) int {
	i := 0
	digits := 0
	for i < len(b) && '0' <= b[i] && b[i] <= '9' {
		i++
		digits++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && '0' <= b[i] && b[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		k := j
		for j < len(b) && '0' <= b[j] && b[j] <= '9' {
			j++
		}
		if k < j {
			i = j
		}
	}
	return i
}

// AppendNumber appends the canonical ECMAScript string form of f (Number::toString) to dst, eg. 1, 0.5, 1e+21, 1.5e-7, NaN or -Infinity.
func AppendNumber(dst []byte, f float64) []byte {
	if math.IsNaN(f) {
		return append(dst, "NaN"...)
	} else if f == 0 {
		return append(dst, '0') // also -0
	} else if f < 0 {
		dst = append(dst, '-')
		f = -f
	}
	if math.IsInf(f, 1) {
		return append(dst, "Infinity"...)
	}

	// shortest digits that round-trip, as d.ddde±x
	var buf [32]byte
	b := strconvStd.AppendFloat(buf[:0], f, 'e', -1, 64)
	iExp := len(b) - 1
	for b[iExp] != 'e' {
		iExp--
	}
	exp, _ := strconvStd.Atoi(string(b[iExp+1:]))
	digits := make([]byte, 0, 17)
	for _, c := range b[:iExp] {
		if c != '.' {
			digits = append(digits, c)
		}
	}

	k := len(digits)
	n := exp + 1
	if k <= n && n <= 21 {
		dst = append(dst, digits...)
		for i := k; i < n; i++ {
			dst = append(dst, '0')
		}
	} else if 0 < n && n <= 21 {
		dst = append(dst, digits[:n]...)
		dst = append(dst, '.')
		dst = append(dst, digits[n:]...)
	} else if -6 < n && n <= 0 {
		dst = append(dst, '0', '.')
		for i := n; i < 0; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, digits...)
	} else {
		dst = append(dst, digits[0])
		if 1 < k {
			dst = append(dst, '.')
			dst = append(dst, digits[1:]...)
		}
		dst = append(dst, 'e')
		if 0 <= n-1 {
			dst = append(dst, '+')
		}
		dst = strconvStd.AppendInt(dst, int64(n-1), 10)
	}
	return dst
}
