package collections

import (
	"math"
	"reflect"
)

// StrictEqual reports whether a and b are the same value without any type
// coercion.
//
//   - Values of different dynamic types are never equal (int(1) != int64(1)).
//   - Comparable values are compared with ==, so NaN is not equal to itself.
//   - Slices and maps are equal only when they are the same slice or map
//     (same backing array and length, or same map header).
//   - Functions are never equal to anything, including themselves.
//   - Values whose dynamic type cannot be compared (a struct holding a slice)
//     are not equal.
//
// StrictEqual never panics.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return false
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// Truthy reports whether v counts as true when no predicate is supplied to
// [Every] or [Some].
//
// nil, false, numeric zero, NaN, the empty string, and nil pointers, slices,
// maps, channels and functions are falsy. Everything else, including empty
// but non-nil slices and maps and every struct value, is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	case reflect.Struct, reflect.Array:
		return true
	}
	return !rv.IsZero()
}
