// Package collection applies the bsearch engine to index-addressable
// collections: searching by index, by extracted key, by key against a
// search value, and by key with a comparator (generalized lower bound).
// The collection itself is never mutated or cached by a search; elements
// and keys may be re-extracted up to about log2(n) times per call.
package collection

// Sized is anything exposing a length, enabling the implicit [0, Len())
// search forms.
type Sized interface {
	Len() int
}

// Collection is an index-addressable ordered collection. Element order
// is whatever makes the caller's tester continuous; the searches never
// check it.
type Collection[E any] interface {
	Sized
	At(i int) E
}

// Slice adapts a Go slice to Collection.
type Slice[E any] []E

func (s Slice[E]) Len() int {
	return len(s)
}

func (s Slice[E]) At(i int) E {
	return s[i]
}

// KeyFunc extracts the comparison key of the element at index i. It must
// be pure: a search may invoke it several times for the same index and
// never caches results.
type KeyFunc[C, K any] func(c C, i int) K

// Comparator is a three-way comparison: negative when a orders before b,
// zero when they are equal, positive when a orders after b.
type Comparator[K any] func(a, b K) int
