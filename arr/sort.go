package arr

import (
	"cmp"
	"reflect"
	"slices"
	"time"

	"github.com/hasbyte1/go-underbar/collections"
)

// keyed pairs an element with its derived sort key.
type keyed[T, K any] struct {
	item T
	key  K
}

// SortBy sorts items in place by the key fn derives from each element and
// returns items itself. Unlike the other helpers in this package it mutates
// its input.
//
// The sort is stable: elements with equal keys keep their relative order.
// fn is called exactly once per element.
//
//	arr.SortBy(users, func(u User) int { return u.Age })
func SortBy[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	return sortKeyed(items, fn, cmp.Compare[K])
}

// SortByKey sorts items in place by the property named key (see
// [collections.Property]) and returns items itself. It is stable.
//
// Keys are compared three-way within their class: numbers numerically,
// strings lexically, false before true, times chronologically. Different
// classes order as numbers, strings, bools, times, other values, then
// missing or nil keys. Two "other" values tie.
func SortByKey[T any](items []T, key string) []T {
	return sortKeyed(items, func(v T) any {
		k, _ := collections.Property(v, key)
		return k
	}, compareKeys)
}

func sortKeyed[T, K any](items []T, fn func(T) K, compare func(K, K) int) []T {
	decorated := collections.Map(collections.FromSlice(items), func(v T, _ collections.Key, _ collections.Collection[T]) keyed[T, K] {
		return keyed[T, K]{item: v, key: fn(v)}
	})
	slices.SortStableFunc(decorated, func(a, b keyed[T, K]) int {
		return compare(a.key, b.key)
	})
	for i, d := range decorated {
		items[i] = d.item
	}
	return items
}

const (
	classNumber = iota
	classString
	classBool
	classTime
	classOther
	classMissing
)

func compareKeys(a, b any) int {
	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}
	switch ca {
	case classNumber:
		return compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b))
	case classString:
		return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case classBool:
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case classTime:
		return a.(time.Time).Compare(b.(time.Time))
	}
	return 0
}

func classOf(v any) int {
	if v == nil {
		return classMissing
	}
	if _, ok := v.(time.Time); ok {
		return classTime
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return classNumber
	case reflect.String:
		return classString
	case reflect.Bool:
		return classBool
	}
	return classOther
}

func compareNumbers(a, b reflect.Value) int {
	switch {
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())
	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	}
	return cmp.Compare(asFloat(a), asFloat(b))
}

func asFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	}
	return v.Float()
}
