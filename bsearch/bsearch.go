// Package bsearch implements a generalized binary search over arbitrary
// ordered domains: fixed-width integers (signed or unsigned) or any
// user-defined ordered type, driven by an injectable midpoint function
// and a monotonic predicate.
//
// The predicate must be continuous over the searched range: false for
// every value below some threshold and true for every value at or above
// it. The search returns that threshold, or to when the predicate is
// false throughout. The from bound is inclusive and the to bound is
// exclusive, even for inverted ranges where to is numerically below
// from; inverting the bounds flips the narrowing direction, not the
// inclusive/exclusive roles.
//
// The engine never validates these contracts. A non-monotonic predicate
// yields an unspecified value in [from, to]; a non-converging custom
// midpoint function keeps the loop running forever. Both are documented
// caller obligations, not runtime errors.
package bsearch

import "golang.org/x/exp/constraints"

// Find narrows [from, to] with the given midpoint function until the
// midpoint stops changing, then returns the boundary: the smallest value
// in the range satisfying test, or to when nothing does. Termination is
// detected purely by midpoint idempotence rather than by comparing the
// distance between the bounds, which is what makes the loop correct for
// inverted ranges and non-numeric domains alike.
//
// An empty range (from == to) converges immediately and returns it.
func Find[T comparable](from, to T, midpoint MidpointFunc[T], test func(T) bool) T {
	mid := midpoint(from, to)
	for {
		if test(mid) {
			to = mid
			next := midpoint(from, to)
			if next == mid {
				return from
			}
			mid = next
		} else {
			from = mid
			next := midpoint(from, to)
			if next == mid {
				return to
			}
			mid = next
		}
	}
}

// FindFunc is Find for domains whose convergence check needs value
// equality supplied by the caller, e.g. *big.Int where == would compare
// pointers. equal must report whether two domain values are the same
// value, not the same allocation.
func FindFunc[T any](from, to T, midpoint MidpointFunc[T], equal func(a, b T) bool, test func(T) bool) T {
	mid := midpoint(from, to)
	for {
		if test(mid) {
			to = mid
			next := midpoint(from, to)
			if equal(next, mid) {
				return from
			}
			mid = next
		} else {
			from = mid
			next := midpoint(from, to)
			if equal(next, mid) {
				return to
			}
			mid = next
		}
	}
}

// Search runs Find over an integer range with the built-in Midpoint.
// Instantiating at a signed type gives the signed search flavor and at
// an unsigned type the unsigned one; no other selection is needed.
func Search[T constraints.Integer](from, to T, test func(T) bool) T {
	return Find(from, to, Midpoint[T], test)
}
