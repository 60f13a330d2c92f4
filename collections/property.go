package collections

import (
	"reflect"
	"strings"
)

// tagName is the struct tag that renames a field for [Property], shared with
// mapstructure-decoded configuration.
const tagName = "mapstructure"

// keyed is satisfied by *Mapping[V] for every V.
type keyed interface {
	Lookup(key string) (any, bool)
}

// Property resolves key against v and reports whether it was found.
//
// v may be a [*Mapping], any Go map with a string key type, or a struct or
// pointer to struct. Struct field values are returned as they are; a
// `mapstructure:"name"` tag renames a field and `mapstructure:"-"` hides it.
// An exact match wins, otherwise the first case-insensitive match in field
// order is used. Unexported fields are never visible.
//
// When key is not present literally and contains dots it is treated as a
// path and each segment is resolved against the previous result:
//
//	Property(order, "customer.address.city")
func Property(v any, key string) (any, bool) {
	if val, ok := lookup(v, key); ok {
		return val, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}
	current := v
	for _, seg := range strings.Split(key, ".") {
		next, ok := lookup(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func lookup(v any, key string) (any, bool) {
	if v == nil {
		return nil, false
	}
	switch m := v.(type) {
	case keyed:
		return m.Lookup(key)
	case map[string]any:
		val, ok := m[key]
		return val, ok
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		return field(rv, key)
	}
	return nil, false
}

// field resolves key against the exported fields of rv, promoted fields
// included. A field's name is its mapstructure tag when it has one. Exact
// matches win; otherwise the first case-insensitive match in field order.
func field(rv reflect.Value, key string) (any, bool) {
	fields := reflect.VisibleFields(rv.Type())
	for _, fold := range []bool{false, true} {
		for _, sf := range fields {
			name, ok := fieldName(sf)
			if !ok {
				continue
			}
			if name != key && (!fold || !strings.EqualFold(name, key)) {
				continue
			}
			fv, err := rv.FieldByIndexErr(sf.Index)
			if err != nil || !fv.CanInterface() {
				return nil, false
			}
			return fv.Interface(), true
		}
	}
	return nil, false
}

func fieldName(sf reflect.StructField) (string, bool) {
	if !sf.IsExported() {
		return "", false
	}
	tag, _, _ := strings.Cut(sf.Tag.Get(tagName), ",")
	switch tag {
	case "-":
		return "", false
	case "":
		return sf.Name, true
	}
	return tag, true
}
