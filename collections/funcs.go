package collections

import (
	"fmt"
	"reflect"
)

// This file holds the element-wise transforms. Each of them walks the input
// with Collection.Each and returns a new slice; the input is never modified.

// Identity returns v. It is the iterator to reach for when an operation needs
// one and the caller has nothing to add.
func Identity[T any](v T) T { return v }

// IndexOf returns the index of the first element of items that is
// [StrictEqual] to target, or -1.
func IndexOf[T any](items []T, target T) int {
	result := -1
	FromSlice(items).Each(func(item T, k Key, _ Collection[T]) {
		if result == -1 && StrictEqual(item, target) {
			result = k.Index
		}
	})
	return result
}

// Map returns fn(value, key, c) for every element, in traversal order.
//
//	lengths := collections.Map(collections.Of("a", "bb"),
//	    func(s string, _ collections.Key, _ collections.Collection[string]) int { return len(s) })
func Map[V, R any](c Collection[V], fn func(V, Key, Collection[V]) R) []R {
	out := make([]R, 0, c.Len())
	c.Each(func(v V, k Key, col Collection[V]) {
		out = append(out, fn(v, k, col))
	})
	return out
}

// Filter returns the elements for which pred holds, in traversal order.
func Filter[V any](c Collection[V], pred func(V) bool) []V {
	out := make([]V, 0, c.Len())
	c.Each(func(v V, _ Key, _ Collection[V]) {
		if pred(v) {
			out = append(out, v)
		}
	})
	return out
}

// Reject returns the elements for which pred does not hold.
// It is the complement of [Filter].
func Reject[V any](c Collection[V], pred func(V) bool) []V {
	return Filter(c, func(v V) bool { return !pred(v) })
}

// Pluck returns the attribute named key of every element, resolved with
// [Property]. Elements without the attribute contribute nil.
//
//	names := collections.Pluck(collections.FromSlice(users), "Name")
func Pluck[V any](c Collection[V], key string) []any {
	return Map(c, func(v V, _ Key, _ Collection[V]) any {
		val, _ := Property(v, key)
		return val
	})
}

// InvokeFunc calls fn(element, args...) for every element and collects the
// results in traversal order.
func InvokeFunc[V, R any](c Collection[V], fn func(V, ...any) R, args ...any) []R {
	return Map(c, func(v V, _ Key, _ Collection[V]) R {
		return fn(v, args...)
	})
}

// Invoke calls the method named method on every element with args and
// collects the results in traversal order.
//
// The callable is the element's method of that name if it has one, otherwise
// a function-valued attribute resolved with [Property]. Arguments must be
// assignable to the parameters; numeric arguments are converted between
// numeric kinds. A trailing error result is stripped and, when non-nil,
// reported; a single remaining result is collected as is, several are
// collected as []any, none as nil.
//
// The first failure stops collection and is returned as an [*InvocationError].
func Invoke[V any](c Collection[V], method string, args ...any) ([]any, error) {
	out := make([]any, 0, c.Len())
	var err error
	c.Each(func(v V, _ Key, _ Collection[V]) {
		if err != nil {
			return
		}
		var res any
		res, err = invoke(v, method, args)
		out = append(out, res)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

var errorType = reflect.TypeFor[error]()

func invoke(elem any, method string, args []any) (any, error) {
	callable, ok := resolveCallable(elem, method)
	if !ok {
		return nil, &InvocationError{Element: elem, Method: method, Cause: ErrNotCallable}
	}
	in, err := callArgs(callable.Type(), args)
	if err != nil {
		return nil, &InvocationError{Element: elem, Method: method, Cause: err}
	}

	out := callable.Call(in)
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			return nil, &InvocationError{Element: elem, Method: method, Cause: out[n-1].Interface().(error)}
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	vals := make([]any, len(out))
	for i, o := range out {
		vals[i] = o.Interface()
	}
	return vals, nil
}

func resolveCallable(elem any, method string) (reflect.Value, bool) {
	if elem == nil {
		return reflect.Value{}, false
	}
	if m := reflect.ValueOf(elem).MethodByName(method); m.IsValid() {
		return m, true
	}
	attr, ok := Property(elem, method)
	if !ok || attr == nil {
		return reflect.Value{}, false
	}
	fv := reflect.ValueOf(attr)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return reflect.Value{}, false
	}
	return fv, true
}

func callArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: want at least %d arguments, got %d", ErrArgumentMismatch, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrArgumentMismatch, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := paramType(t, i)
		if a == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(a)
		switch {
		case av.Type().AssignableTo(pt):
			in[i] = av
		case isNumeric(av.Kind()) && isNumeric(pt.Kind()):
			in[i] = av.Convert(pt)
		default:
			return nil, fmt.Errorf("%w: argument %d is %s, want %s", ErrArgumentMismatch, i, av.Type(), pt)
		}
	}
	return in, nil
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
