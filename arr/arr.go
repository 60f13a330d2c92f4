package arr

import (
	"reflect"
	"slices"

	"github.com/hasbyte1/go-underbar/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of items.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a new slice holding the first min(n, len(items)) elements.
// n <= 0 yields an empty slice.
func FirstN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Last returns the last element of items.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a new slice holding the last min(n, len(items)) elements.
// n <= 0 yields an empty slice.
func LastN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

func clamp(n, size int) int {
	return max(0, min(n, size))
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice with duplicates removed under
// [collections.StrictEqual], keeping the first occurrence of each value.
//
// Elements whose dynamic value is comparable are tracked in a hash set;
// anything else (slices, maps, functions) falls back to a linear scan.
func Uniq[T any](items []T) []T {
	out := make([]T, 0, len(items))
	seen := make(map[any]struct{}, len(items))
	var opaque []T

	collections.FromSlice(items).Each(func(v T, _ collections.Key, _ collections.Collection[T]) {
		if h, ok := hashable(v); ok {
			if _, dup := seen[h]; dup {
				return
			}
			seen[h] = struct{}{}
			out = append(out, v)
			return
		}
		if collections.Contains(collections.FromSlice(opaque), v) {
			return
		}
		opaque = append(opaque, v)
		out = append(out, v)
	})
	return out
}

// hashable boxes v for use as a map key when == on it cannot panic.
func hashable(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	if reflect.ValueOf(v).Comparable() {
		return v, true
	}
	return nil, false
}

// Intersection returns the elements of the shortest sequence (the first one
// on a tie in length) that are present in every other sequence, in that
// sequence's order. Duplicates in the shortest sequence are kept.
//
//	arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}, []int{2, 3, 5}) // [2 3]
func Intersection[T any](seqs ...[]T) []T {
	if len(seqs) == 0 {
		return []T{}
	}
	shortest := 0
	for i, s := range seqs {
		if len(s) < len(seqs[shortest]) {
			shortest = i
		}
	}
	others := slices.Delete(slices.Clone(seqs), shortest, shortest+1)

	return collections.Filter(collections.FromSlice(seqs[shortest]), func(v T) bool {
		return collections.Every(collections.FromSlice(others), func(other []T) bool {
			return collections.Contains(collections.FromSlice(other), v)
		})
	})
}

// Difference returns the elements of first that are not present in any of
// others, keeping the order and duplicates of first.
//
//	arr.Difference([]int{1, 2, 3, 4}, []int{2, 4}) // [1 3]
func Difference[T any](first []T, others ...[]T) []T {
	return collections.Reject(collections.FromSlice(first), func(v T) bool {
		return collections.Some(collections.FromSlice(others), func(other []T) bool {
			return collections.Contains(collections.FromSlice(other), v)
		})
	})
}
