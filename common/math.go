package common

import (
	"golang.org/x/exp/constraints"
)

// Lerp computes the exact linear interpolation a*(1-t) + b*t.
// The t parameter is not clamped; values outside [0, 1] extrapolate.
//
// Parameters:
//   - a: the value at t = 0
//   - b: the value at t = 1
//   - t: the interpolation factor
//
// Returns:
//   - T: the interpolated value
func Lerp[T constraints.Float](a, b, t T) T {
	return a*(1-t) + b*t
}

// Coalesce returns the first non-zero value from the provided values, or the zero value if all are zero.
//
// Parameters:
//   - values: a variadic list of values to check for non-zero status
//
// Returns:
//   - T: the first non-zero value from the input, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
