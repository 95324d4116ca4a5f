package utils

import (
	"math"
)

// Fl is the floating point type used for lengths.
type Fl = float64

// RoundPrec rounds f with n digits precision
func RoundPrec(f Fl, n int) Fl {
	n10 := math.Pow10(n)
	return math.Round(f*n10) / n10
}

// IsClose returns true if a and b differ by at most tolerance.
func IsClose(a, b, tolerance Fl) bool {
	return math.Abs(a-b) <= tolerance
}
