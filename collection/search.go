package collection

import (
	"github.com/Johniel/bisect/bsearch"
	"github.com/Johniel/bisect/funcs"
)

// IndexSearch returns the lowest index in [from, to) whose element
// satisfies test, or to when none does. test receives the collection and
// the candidate index and must be continuous over the range: false below
// some index, true from there on.
func IndexSearch[C any](c C, from, to int, test func(c C, i int) bool) int {
	return bsearch.Find(from, to, bsearch.Midpoint[int], func(i int) bool {
		return test(c, i)
	})
}

// IndexSearchAll is IndexSearch over the whole collection.
func IndexSearchAll[C Sized](c C, test func(c C, i int) bool) int {
	return IndexSearch(c, 0, c.Len(), test)
}

// KeySearch returns the lowest index in [from, to) whose extracted key
// satisfies test, or to when none does.
func KeySearch[C, K any](c C, from, to int, key KeyFunc[C, K], test funcs.Predicate[K]) int {
	return IndexSearch(c, from, to, func(c C, i int) bool {
		return test(key(c, i))
	})
}

// KeySearchAll is KeySearch over the whole collection.
func KeySearchAll[C Sized, K any](c C, key KeyFunc[C, K], test funcs.Predicate[K]) int {
	return KeySearch(c, 0, c.Len(), key, test)
}

// ValueSearch returns the lowest index in [from, to) whose extracted key
// satisfies test against the search value, or to when none does. It is
// KeySearch with the target threaded through, so the same tester can be
// reused across different search values.
func ValueSearch[C, K, V any](c C, from, to int, search V, key KeyFunc[C, K], test func(search V, k K) bool) int {
	return IndexSearch(c, from, to, func(c C, i int) bool {
		return test(search, key(c, i))
	})
}

// ValueSearchAll is ValueSearch over the whole collection.
func ValueSearchAll[C Sized, K, V any](c C, search V, key KeyFunc[C, K], test func(search V, k K) bool) int {
	return ValueSearch(c, 0, c.Len(), search, key, test)
}

// LowerBound returns the lowest index in [from, to) whose key does not
// compare less than search, or to when every key does. This is the
// insertion point of search among keys ascending under cmp; unlike
// sort.SearchInts-style APIs built on negative sentinels, the result is
// always a usable index.
func LowerBound[C, K any](c C, from, to int, search K, key KeyFunc[C, K], cmp Comparator[K]) int {
	return ValueSearch(c, from, to, search, key, func(search, k K) bool {
		return cmp(k, search) >= 0
	})
}

// LowerBoundAll is LowerBound over the whole collection.
func LowerBoundAll[C Sized, K any](c C, search K, key KeyFunc[C, K], cmp Comparator[K]) int {
	return LowerBound(c, 0, c.Len(), search, key, cmp)
}
