// Package arr provides the sequence-only transforms of go-underbar: head and
// tail slicing, de-duplication, stable sorting, zipping, flattening, set
// operations and shuffling.
//
// All helpers are generic and operate on plain []T values. They are built on
// the iteration and fold primitives of package collections, so element
// equality is always [collections.StrictEqual]:
//
//	arr.Uniq([]int{1, 2, 2, 3, 1})                          // [1 2 3]
//	arr.Difference([]int{1, 2, 3, 4}, []int{2, 4})          // [1 3]
//	arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4})        // [2 3]
//	arr.Flatten([]any{1, []any{2, []any{3, []any{4}}, 5}})  // [1 2 3 4 5]
//
// # Mutation
//
// Every helper returns a fresh slice and leaves its input untouched, except
// [SortBy] and [SortByKey], which sort in place and return the same slice.
//
// # Absent values
//
// [Zip] pads shorter inputs with an absent [Optional] rather than the zero
// value, so a real zero can be told apart from a missing position.
package arr
