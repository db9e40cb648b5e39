package bsearch

import "golang.org/x/exp/constraints"

// MidpointFunc computes a representative middle value between two bounds
// of the same ordered domain. The search loop narrows its interval by
// replacing one bound with the midpoint, so a midpoint function must be
// pure and must converge: as the interval narrows, recomputing the
// midpoint eventually returns one of the bounds unchanged. The built-in
// integer midpoints converge by construction; custom functions for other
// domains are the caller's responsibility (a non-converging midpoint
// makes Find loop forever).
type MidpointFunc[T any] func(from, to T) T

// Midpoint returns the overflow-safe midpoint of a fixed-width integer
// range: from + (to-from)>>1. The subtraction wraps around, which is what
// keeps the classic (from+to)/2 overflow out, and the shift follows the
// sign of T: arithmetic for signed types, zero-filling for unsigned ones.
// The same formula therefore serves forward ranges, inverted ranges
// (to numerically below from), and full unsigned spans.
func Midpoint[T constraints.Integer](from, to T) T {
	return from + (to-from)>>1
}

// MidpointUint32 is the unsigned-ordering midpoint for 32-bit values kept
// in signed variables: the difference is shifted as a zero-filled uint32,
// so bit patterns with the top bit set narrow as the large unsigned
// numbers they represent rather than as negatives.
func MidpointUint32(from, to int32) int32 {
	return from + int32(uint32(to-from)>>1)
}

// MidpointUint64 is MidpointUint32 for 64-bit values.
func MidpointUint64(from, to int64) int64 {
	return from + int64(uint64(to-from)>>1)
}
