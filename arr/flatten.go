package arr

import (
	"reflect"

	"github.com/hasbyte1/go-underbar/collections"
)

// Flatten returns the leaves of an arbitrarily nested sequence in pre-order.
// Any slice or array counts as a nested sequence; strings, maps and every
// other value are leaves. A nil nested value yields an empty result and a
// non-sequence nested value yields a single leaf.
//
//	arr.Flatten([]any{1, []any{2, []int{3, 4}}, 5}) // [1 2 3 4 5]
//
// Cyclic structures are not supported.
func Flatten(nested any) []any {
	out := make([]any, 0)
	if nested == nil {
		return out
	}
	var walk func(v any, _ collections.Key, _ collections.Collection[any])
	walk = func(v any, _ collections.Key, _ collections.Collection[any]) {
		if children, ok := elements(v); ok {
			collections.FromSlice(children).Each(walk)
			return
		}
		out = append(out, v)
	}
	walk(nested, collections.Key{}, collections.Collection[any]{})
	return out
}

// elements unpacks v when it is a slice or array.
func elements(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
