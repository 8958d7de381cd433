// Package tolerance holds the single module-wide floating-point tolerance
// policy. Every predicate elsewhere in geomcore that needs an
// "almost-equal" judgment accepts an explicit tolerance parameter; this
// package supplies the default and the handful of comparison helpers
// shared by every other package so the rounding rules stay in one place.
package tolerance

import "math"

// Default is the module-wide default tolerance for almost-equal tests,
// in caller-supplied user units. Every predicate that takes a tolerance
// accepts an override; nothing in geomcore compares floats with ==.
const Default = 1e-9

// Equal reports whether a and b differ by no more than tol.
func Equal(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Zero reports whether v is within tol of zero.
func Zero(v, tol float64) bool {
	return math.Abs(v) <= tol
}

// LessOrEqual reports whether a <= b within tolerance tol.
func LessOrEqual(a, b, tol float64) bool {
	return a <= b+tol
}
