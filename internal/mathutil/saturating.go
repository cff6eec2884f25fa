// Package mathutil holds small numeric helpers shared by the rule packages.
package mathutil

import (
	"math"
	"unsafe"
)

// Integer is the set of signed integer types the saturating helpers accept.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// bounds derives the range of T from its width, so named integer types
// get the same limits as their underlying type.
func bounds[T Integer]() (lo, hi T) {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	hi = T(1)<<(bits-1) - 1
	return -hi - 1, hi
}

// SaturatingAdd returns a+b clamped to the range of T instead of wrapping.
func SaturatingAdd[T Integer](a, b T) T {
	lo, hi := bounds[T]()
	switch {
	case b > 0 && a > hi-b:
		return hi
	case b < 0 && a < lo-b:
		return lo
	}
	return a + b
}

// CeilToInt32 rounds v up and clamps it to the int32 range.
func CeilToInt32(v float64) int32 {
	c := math.Ceil(v)
	switch {
	case math.IsNaN(c):
		return 0
	case c >= math.MaxInt32:
		return math.MaxInt32
	case c <= math.MinInt32:
		return math.MinInt32
	}
	return int32(c)
}

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
