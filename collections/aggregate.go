package collections

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Folds
// ─────────────────────────────────────────────────────────────────────────────

// ReduceTo folds c from left to right, threading an accumulator of type A
// through fn(accumulator, value). It starts from initial.
//
//	total := collections.ReduceTo(collections.Of("a", "bb"),
//	    func(n int, s string) int { return n + len(s) }, 0) // 3
func ReduceTo[V, A any](c Collection[V], fn func(A, V) A, initial A) A {
	acc := initial
	c.Each(func(v V, _ Key, _ Collection[V]) {
		acc = fn(acc, v)
	})
	return acc
}

// Reduce folds c from left to right with fn(accumulator, value).
//
// With one initial value the fold starts from it. Without one the first
// visited element seeds the accumulator and folding continues over the
// remaining elements; an empty c then yields an [*EmptyReduceError].
//
//	sum, _ := collections.Reduce(collections.Of(1, 2, 3),
//	    func(a, b int) int { return a + b }) // 6
func Reduce[V any](c Collection[V], fn func(V, V) V, initial ...V) (V, error) {
	var zero V
	switch len(initial) {
	case 0:
	case 1:
		return ReduceTo(c, fn, initial[0]), nil
	default:
		return zero, fmt.Errorf("%w: got %d", ErrTooManyInitialValues, len(initial))
	}

	var acc V
	seeded := false
	c.Each(func(v V, _ Key, _ Collection[V]) {
		if !seeded {
			acc, seeded = v, true
			return
		}
		acc = fn(acc, v)
	})
	if !seeded {
		return zero, &EmptyReduceError{Kind: c.Kind()}
	}
	return acc, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether any element is [StrictEqual] to target.
func Contains[V any](c Collection[V], target V) bool {
	return ReduceTo(c, func(found bool, v V) bool {
		return found || StrictEqual(v, target)
	}, false)
}

// Every reports whether preds[0] holds for every element, or, when no
// predicate is given, whether every element is [Truthy]. It is true for an
// empty collection. Once an element fails, the predicate is not called again.
func Every[V any](c Collection[V], preds ...func(V) bool) bool {
	test := predicate(preds)
	return ReduceTo(c, func(ok bool, v V) bool {
		return ok && test(v)
	}, true)
}

// Some reports whether preds[0] (or [Truthy]) holds for at least one element.
// It is defined as the negation of Every over the negated predicate, so it
// is false for an empty collection.
func Some[V any](c Collection[V], preds ...func(V) bool) bool {
	test := predicate(preds)
	return !Every(c, func(v V) bool { return !test(v) })
}

func predicate[V any](preds []func(V) bool) func(V) bool {
	if len(preds) > 0 && preds[0] != nil {
		return preds[0]
	}
	return func(v V) bool { return Truthy(v) }
}
