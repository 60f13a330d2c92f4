package collections

import "strconv"

// Kind reports which shape a [Collection] wraps.
type Kind uint8

const (
	// KindSequence is an integer-indexed, length-bearing slice.
	KindSequence Kind = iota
	// KindMapping is an insertion-ordered, string-keyed [Mapping].
	KindMapping
)

// String returns "sequence" or "mapping".
func (k Kind) String() string {
	if k == KindMapping {
		return "mapping"
	}
	return "sequence"
}

// Key identifies the position of an element handed to an iterator.
//
// For sequences Index is the element's index and Name is empty. For mappings
// Index is the entry's enumeration position and Name is the mapping key.
type Key struct {
	Index int
	Name  string
	named bool
}

func indexKey(i int) Key { return Key{Index: i} }

func nameKey(i int, name string) Key { return Key{Index: i, Name: name, named: true} }

// Named reports whether the key came from a mapping.
func (k Key) Named() bool { return k.named }

// String returns the mapping key for mapping entries and the decimal index
// for sequence elements.
func (k Key) String() string {
	if k.named {
		return k.Name
	}
	return strconv.Itoa(k.Index)
}
