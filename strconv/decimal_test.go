package strconv

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		f        string
		expected float64
	}{
		{"5", 5},
		{"5.1", 5.1},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1E-3", 0.001},
		{"2e+2", 200},
		{"0.0000000000000000000000000005", 5e-28},
		{"18446744073709551620", 18446744073709551620.0},
		{"1000000000000000000000000.0000", 1e24},
		{"1000000000000000000000000000000000000000000", 1e42},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.f), func(t *testing.T) {
			f, n := ParseDecimal([]byte(tt.f))
			test.T(t, n, len(tt.f))
			test.Float(t, f, tt.expected)
		})
	}
}

func TestParseDecimalError(t *testing.T) {
	tests := []struct {
		f        string
		n        int
		expected float64
	}{
		{"+1", 0, 0},
		{"-1", 0, 0},
		{".", 0, 0},
		{"e1", 0, 0},
		{"1e", 1, 1},
		{"1e+", 1, 1},
		{"1.5x", 3, 1.5},
		{"12_3", 2, 12},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.f), func(t *testing.T) {
			f, n := ParseDecimal([]byte(tt.f))
			test.T(t, n, tt.n)
			test.T(t, f, tt.expected)
		})
	}
}

func TestParseDecimalOverflow(t *testing.T) {
	f, n := ParseDecimal([]byte("1e400"))
	test.T(t, n, 5)
	test.That(t, math.IsInf(f, 1), "overflow must be +Inf")
}

func TestAppendNumber(t *testing.T) {
	tests := []struct {
		f        float64
		expected string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1, "-1"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{123.456, "123.456"},
		{100, "100"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e21, "1.5e+21"},
		{1e-6, "0.000001"},
		{1.5e-6, "0.0000015"},
		{1e-7, "1e-7"},
		{1.25e-7, "1.25e-7"},
		{0.1 + 0.2, "0.30000000000000004"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{5e-324, "5e-324"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			test.String(t, string(AppendNumber(nil, tt.f)), tt.expected)
		})
	}

	// appends
	test.String(t, string(AppendNumber([]byte("x="), 2)), "x=2")
}

func FuzzParseDecimal(f *testing.F) {
	f.Add("5")
	f.Add("5.1")
	f.Add(".5e-3")
	f.Add("18446744073709551620")
	f.Add("0.0000000000000000000000000005")
	f.Fuzz(func(t *testing.T, s string) {
		ParseDecimal([]byte(s))
	})
}

func FuzzAppendNumber(f *testing.F) {
	f.Add(0.0)
	f.Add(1.5e-7)
	f.Add(1e21)
	f.Add(-123.456)
	f.Fuzz(func(t *testing.T, x float64) {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return
		}
		b := AppendNumber(nil, x)
		y, ok := ParseLiteral(trimSign(b))
		if !ok {
			t.Fatalf("AppendNumber(%v) = %s is not a literal", x, b)
		}
		if x < 0 {
			y = -y
		}
		test.Float(t, y, x)
	})
}

func trimSign(b []byte) []byte {
	if 0 < len(b) && b[0] == '-' {
		return b[1:]
	}
	return b
}
