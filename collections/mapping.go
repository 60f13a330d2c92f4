package collections

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// Mapping is a string-keyed associative container that remembers insertion
// order. It is the keyed shape a [Collection] can wrap.
//
// Overwriting an existing key keeps its original position; deleting a key and
// setting it again moves it to the end. The zero value is an empty mapping
// ready to use. A Mapping is not safe for concurrent mutation.
type Mapping[V any] struct {
	keys   []string
	values map[string]V
}

// NewMapping creates a Mapping from pairs, in the order given.
// A repeated key keeps its first position and its last value.
//
//	m := collections.NewMapping(collections.P("a", 1), collections.P("b", 2))
func NewMapping[V any](pairs ...Pair[string, V]) *Mapping[V] {
	m := &Mapping[V]{
		keys:   make([]string, 0, len(pairs)),
		values: make(map[string]V, len(pairs)),
	}
	for _, p := range pairs {
		m.Set(p.First, p.Second)
	}
	return m
}

// FromMap creates a Mapping from a Go map. Go maps carry no order, so keys
// are inserted in ascending lexical order.
func FromMap[V any](src map[string]V) *Mapping[V] {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := &Mapping[V]{keys: keys, values: make(map[string]V, len(src))}
	for _, k := range keys {
		m.values[k] = src[k]
	}
	return m
}

// Len returns the number of entries.
func (m *Mapping[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Has reports whether key is present, whatever its value.
func (m *Mapping[V]) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Get returns the value stored under key together with a presence flag.
func (m *Mapping[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	v, ok := m.values[key]
	if !ok {
		return zero, false
	}
	return v, true
}

// Lookup is Get with the value boxed as any. It lets [Property] resolve keys
// against a Mapping of any value type.
func (m *Mapping[V]) Lookup(key string) (any, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return v, true
}

// Set stores v under key. New keys are appended to the enumeration order.
func (m *Mapping[V]) Set(key string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Delete removes key and reports whether it was present.
func (m *Mapping[V]) Delete(key string) bool {
	if !m.Has(key) {
		return false
	}
	delete(m.values, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Keys returns a copy of the keys in enumeration order.
func (m *Mapping[V]) Keys() []string {
	if m == nil {
		return []string{}
	}
	return slices.Clone(m.keys)
}

// Values returns the values in enumeration order.
func (m *Mapping[V]) Values() []V {
	out := make([]V, 0, m.Len())
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// Clone returns an independent copy with the same order.
func (m *Mapping[V]) Clone() *Mapping[V] {
	out := &Mapping[V]{
		keys:   m.Keys(),
		values: make(map[string]V, m.Len()),
	}
	for _, k := range out.keys {
		out.values[k] = m.values[k]
	}
	return out
}

// ToMap returns the entries as a plain Go map.
func (m *Mapping[V]) ToMap() map[string]V {
	out := make(map[string]V, m.Len())
	if m == nil {
		return out
	}
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the mapping as a JSON object, keys in enumeration order.
func (m *Mapping[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m != nil {
		for i, k := range m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			vb, err := json.Marshal(m.values[k])
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			buf.Write(vb)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the source.
// Any existing entries are discarded.
func (m *Mapping[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("collections: mapping must be a JSON object, got %v", tok)
	}

	m.keys = m.keys[:0]
	m.values = make(map[string]V)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("collections: unexpected JSON object key %v", tok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("collections: decode value for key %q: %w", key, err)
		}
		m.Set(key, v)
	}
	_, err = dec.Token()
	return err
}
