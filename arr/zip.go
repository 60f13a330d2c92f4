package arr

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-underbar/collections"
)

// Optional holds a value that may be absent. [Zip] uses it to mark positions
// past the end of a shorter input.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some wraps v as a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Value: v, Present: true} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.Value, o.Present }

// String formats the value, or "<absent>".
func (o Optional[T]) String() string {
	if !o.Present {
		return "<absent>"
	}
	return fmt.Sprint(o.Value)
}

// MarshalJSON encodes an absent Optional as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Zip groups the j-th elements of every sequence into the j-th row. The
// result has as many rows as the longest sequence; positions a shorter
// sequence cannot fill are absent.
//
//	arr.Zip([]any{"a", "b", "c"}, []any{1, 2})
//	// [[a 1] [b 2] [c <absent>]]
func Zip[T any](seqs ...[]T) [][]Optional[T] {
	longest := collections.ReduceTo(collections.FromSlice(seqs), func(n int, s []T) int {
		return max(n, len(s))
	}, 0)

	out := make([][]Optional[T], longest)
	for j := range out {
		out[j] = collections.Map(collections.FromSlice(seqs), func(s []T, _ collections.Key, _ collections.Collection[[]T]) Optional[T] {
			if j < len(s) {
				return Some(s[j])
			}
			return Optional[T]{}
		})
	}
	return out
}
