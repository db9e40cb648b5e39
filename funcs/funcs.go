// Package funcs defines the callable shapes shared across the library:
// plain single-argument functions and predicates, plus checked variants
// that report an error, with adapters between the two. The search engine
// itself only ever consumes the plain shapes; the checked ones exist for
// callers whose testers or extractors can fail (I/O-backed collections,
// remote lookups) and need a defined way to cross into predicate-land.
package funcs

// Func maps a value to a result.
type Func[T, R any] func(T) R

// FuncErr is Func for operations that can fail.
type FuncErr[T, R any] func(T) (R, error)

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// PredicateErr is Predicate for tests that can fail.
type PredicateErr[T any] func(T) (bool, error)

// Must unwraps a checked result, panicking on error. Intended for call
// sites where the error is statically impossible or unrecoverable.
func Must[R any](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}

// Checked lifts f into the error-returning shape; the error is always nil.
func (f Func[T, R]) Checked() FuncErr[T, R] {
	return func(v T) (R, error) {
		return f(v), nil
	}
}

// Must converts f into a plain Func that panics when f fails.
func (f FuncErr[T, R]) Must() Func[T, R] {
	return func(v T) R {
		return Must(f(v))
	}
}

// Checked lifts p into the error-returning shape; the error is always nil.
func (p Predicate[T]) Checked() PredicateErr[T] {
	return func(v T) (bool, error) {
		return p(v), nil
	}
}

// Unchecked converts p into a plain Predicate. A failing test is treated
// as unsatisfied; the error is handed to onErr when it is non-nil.
func (p PredicateErr[T]) Unchecked(onErr func(error)) Predicate[T] {
	return func(v T) bool {
		ok, err := p(v)
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return false
		}
		return ok
	}
}
