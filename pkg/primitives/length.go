package primitives

import (
	"math"
	"strconv"
	"strings"
)

// Length is a numeric-or-string style value. Numbers are pixel counts;
// strings are passed through verbatim so any CSS unit or keyword works.
// The zero value is absent.
type Length struct {
	px    float64
	raw   string
	isNum bool
}

// Px returns a numeric length interpreted as pixels.
func Px(n float64) Length {
	return Length{px: n, isNum: true}
}

// Raw returns a string length used unchanged, e.g. "1rem" or "auto".
func Raw(s string) Length {
	return Length{raw: s}
}

// IsNumeric reports whether the length was given as a number.
func (l Length) IsNumeric() bool {
	return l.isNum
}

// IsZero reports whether the length is absent.
func (l Length) IsZero() bool {
	return !l.isNum && l.raw == ""
}

// Format renders the length as a CSS value: "<n>px" for numbers, the
// string itself otherwise, and "0" when absent.
func (l Length) Format() string {
	if l.isNum {
		return formatNumber(l.px) + "px"
	}
	if l.raw == "" {
		return "0"
	}
	return l.raw
}

func (l Length) String() string {
	return l.Format()
}

// formatNumber renders n the way CSS-in-JS interpolation does: shortest
// round-trip digits, exponent notation outside [1e-6, 1e21), no negative
// zero, and Infinity/NaN spelled out.
func formatNumber(n float64) string {
	switch {
	case n == 0:
		return "0"
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}

	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(n, 'e', -1, 64), "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
