package math

import stdmath "math"

type Number interface {
	~float32 | ~float64 | ~int | ~int64
}

// Clamp bounds val to [lo, hi]. lo must not exceed hi.
func Clamp[T Number](val, lo, hi T) T {
	return max(lo, min(hi, val))
}

// Step moves val by delta and clamps the result to [lo, hi].
func Step[T Number](val, delta, lo, hi T) T {
	return Clamp(val+delta, lo, hi)
}

// Within reports whether val lies in [lo, hi]. NaN is never within.
func Within[T Number](val, lo, hi T) bool {
	return val >= lo && val <= hi
}

// NonNegative reports whether val is a finite number >= 0.
func NonNegative(val float64) bool {
	return Within(val, 0, stdmath.MaxFloat64)
}
