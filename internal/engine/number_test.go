package engine

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	// Held in variables so the sum is computed in float64 rather than folded
	// exactly at compile time.
	a, b := 0.1, 0.2

	tests := []struct {
		in   float64
		want string
	}{
		{in: 3, want: "3"},
		{in: -12, want: "-12"},
		{in: 0.5, want: "0.5"},
		{in: a + b, want: "0.30000000000000004"},
		{in: math.Copysign(0, -1), want: "0"},
		{in: 1e21, want: "1e+21"},
		{in: 1.5e-7, want: "1.5e-7"},
		{in: 123456789012, want: "123456789012"},
		{in: math.NaN(), want: "NaN"},
		{in: math.Inf(1), want: "Infinity"},
		{in: math.Inf(-1), want: "-Infinity"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatNumber(tc.in); got != tc.want {
				t.Fatalf("FormatNumber(%v): expected %q, got %q", tc.in, tc.want, got)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "42", want: 42},
		{in: "0.", want: 0},
		{in: "-0.25", want: -0.25},
		{in: ".5", want: 0.5},
		{in: "1e+21", want: 1e21},
		{in: "12abc", want: 12},
		{in: "Infinity", want: math.Inf(1)},
		{in: "-Infinity", want: math.Inf(-1)},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseNumber(tc.in); got != tc.want {
				t.Fatalf("ParseNumber(%q): expected %v, got %v", tc.in, tc.want, got)
			}
		})
	}

	for _, in := range []string{"NaN", "-NaN", "", "-", "."} {
		if got := ParseNumber(in); !math.IsNaN(got) {
			t.Fatalf("ParseNumber(%q): expected NaN, got %v", in, got)
		}
	}
}
