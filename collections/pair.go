package collections

import "fmt"

// Pair holds two values of possibly different types.
// [NewMapping] takes Pair[string, V] entries so that a mapping literal keeps
// the order it was written in.
type Pair[A, B any] struct {
	First  A
	Second B
}

// P is shorthand for Pair{First: a, Second: b}.
func P[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
