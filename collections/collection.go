package collections

import (
	"encoding/json"
	"fmt"
)

// Collection is either an ordered sequence or a keyed [Mapping].
//
// The shape is fixed when the Collection is built and [Collection.Each] is the
// only place that branches on it; every other operation in this package and
// in package arr is written against Each and is therefore shape-agnostic.
//
// # Creating a collection
//
//	c := collections.Of(1, 2, 3)
//	c := collections.FromSlice(users)
//	c := collections.FromMapping(collections.NewMapping(collections.P("a", 1)))
//
// A sequence Collection wraps the caller's slice without copying it. Read-only
// operations never write through it.
type Collection[V any] struct {
	kind    Kind
	items   []V
	mapping *Mapping[V]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates a sequence Collection from a variadic list of items.
func Of[V any](items ...V) Collection[V] {
	return Collection[V]{kind: KindSequence, items: items}
}

// FromSlice creates a sequence Collection backed by items.
func FromSlice[V any](items []V) Collection[V] {
	return Collection[V]{kind: KindSequence, items: items}
}

// FromMapping creates a mapping Collection backed by m.
// A nil m behaves as an empty mapping.
func FromMapping[V any](m *Mapping[V]) Collection[V] {
	return Collection[V]{kind: KindMapping, mapping: m}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Kind reports whether c is a sequence or a mapping.
func (c Collection[V]) Kind() Kind { return c.kind }

// Len returns the number of elements or entries.
func (c Collection[V]) Len() int {
	if c.kind == KindMapping {
		return c.mapping.Len()
	}
	return len(c.items)
}

// IsEmpty reports whether c has no elements.
func (c Collection[V]) IsEmpty() bool { return c.Len() == 0 }

// Values returns a fresh slice of the element values in traversal order.
func (c Collection[V]) Values() []V {
	out := make([]V, 0, c.Len())
	c.Each(func(v V, _ Key, _ Collection[V]) { out = append(out, v) })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key, c) for every element: sequences in index order,
// mappings in enumeration order.
//
// Mapping keys are snapshotted before the first call; entries deleted by fn
// before they are reached are skipped, entries added by fn are not visited.
// Elements appended to a sequence's backing slice during iteration are not
// visited either.
func (c Collection[V]) Each(fn func(V, Key, Collection[V])) {
	if c.kind == KindMapping {
		for i, k := range c.mapping.Keys() {
			v, ok := c.mapping.Get(k)
			if !ok {
				continue
			}
			fn(v, nameKey(i, k), c)
		}
		return
	}
	for i, v := range c.items {
		fn(v, indexKey(i), c)
	}
}

// Each is the package-level form of [Collection.Each].
func Each[V any](c Collection[V], fn func(V, Key, Collection[V])) {
	c.Each(fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes sequences as JSON arrays and mappings as JSON objects
// with keys in enumeration order.
func (c Collection[V]) MarshalJSON() ([]byte, error) {
	if c.kind == KindMapping {
		if c.mapping == nil {
			return []byte("{}"), nil
		}
		return c.mapping.MarshalJSON()
	}
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

// String returns a JSON representation of c.
// It implements [fmt.Stringer].
func (c Collection[V]) String() string {
	b, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.Values())
	}
	return string(b)
}
