// Package collections provides the iteration and aggregation primitives the
// rest of go-underbar is built from, together with the element-wise
// transforms and mapping merges that sit directly on top of them.
//
// # Shapes
//
// A [Collection] is either an ordered sequence (a slice) or a keyed
// [Mapping] (string keys, insertion order). The shape is chosen at the call
// boundary and [Collection.Each] is the only code that looks at it:
//
//	collections.Of(1, 2, 3).Each(func(v int, k collections.Key, _ collections.Collection[int]) {
//	    fmt.Println(k, v) // 0 1, 1 2, 2 3
//	})
//
//	m := collections.NewMapping(collections.P("a", 1), collections.P("b", 2))
//	collections.FromMapping(m).Each(func(v int, k collections.Key, _ collections.Collection[int]) {
//	    fmt.Println(k, v) // a 1, b 2
//	})
//
// # Folds
//
// [Reduce] and [ReduceTo] are left folds; [Contains], [Every] and [Some] are
// folds over a boolean accumulator. [Some] is the De Morgan dual of [Every].
//
// # Transforms
//
// [Map], [Filter], [Reject], [Pluck], [Invoke] and [InvokeFunc] always return
// a new slice and never touch their input. Attribute access by name goes
// through [Property], which understands mappings, Go maps and structs.
//
// # Equality
//
// Membership tests use [StrictEqual]: no coercion between types, identity for
// slices and maps, and no panics on values Go cannot compare.
//
// # Merging
//
// [Extend] and [Defaults] copy entries between mappings in place.
package collections
