package arr

import (
	"math/rand/v2"
	"slices"
)

// IntNSource draws uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type IntNSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Shuffle returns a random permutation of items without modifying it.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(items, globalSource{})
}

// ShuffleWith is [Shuffle] drawing from r, which makes the permutation
// reproducible for a seeded source.
//
// Each step draws a uniform index into the remaining working copy, moves
// that element to the result and removes it from the copy.
func ShuffleWith[T any](items []T, r IntNSource) []T {
	work := slices.Clone(items)
	out := make([]T, 0, len(items))
	for len(work) > 0 {
		i := r.IntN(len(work))
		out = append(out, work[i])
		last := len(work) - 1
		work[i] = work[last]
		work = work[:last]
	}
	return out
}
