package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the longest decimal literal at the start of a display.
var leadingNumber = regexp.MustCompile(`^\s*[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseNumber reads the leading numeric literal of s. Trailing text is ignored
// ("0." reads as 0), and text without a numeric prefix, such as "NaN", reads
// as NaN.
func ParseNumber(s string) float64 {
	lit := leadingNumber.FindString(s)
	if lit == "" {
		return math.NaN()
	}
	// An out-of-range exponent still yields ±Inf alongside ErrRange, which is
	// the value we want.
	f, _ := strconv.ParseFloat(strings.TrimSpace(lit), 64)
	return f
}

// FormatNumber renders f the way the display shows numbers: shortest
// round-trip decimal, exponent form outside [1e-6, 1e21), and the words
// NaN / Infinity for the non-finite values.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent turns "1.5e-07" into "1.5e-7".
func trimExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
