package collections

// Extend copies every entry of each source into target, sources processed
// left to right. Later sources overwrite earlier ones and overwrite keys
// already in target. Keys new to target are appended in the order they are
// first seen. Extend mutates and returns target; a nil target is replaced by
// a new mapping.
func Extend[V any](target *Mapping[V], sources ...*Mapping[V]) *Mapping[V] {
	if target == nil {
		target = NewMapping[V]()
	}
	for _, src := range sources {
		FromMapping(src).Each(func(v V, k Key, _ Collection[V]) {
			target.Set(k.Name, v)
		})
	}
	return target
}

// Defaults fills in keys missing from target. It walks sources like [Extend]
// but copies an entry only when target does not have that key at the time of
// the check, so the first source supplying a missing key wins and an existing
// key is never overwritten, whatever its value.
func Defaults[V any](target *Mapping[V], sources ...*Mapping[V]) *Mapping[V] {
	if target == nil {
		target = NewMapping[V]()
	}
	for _, src := range sources {
		FromMapping(src).Each(func(v V, k Key, _ Collection[V]) {
			if !target.Has(k.Name) {
				target.Set(k.Name, v)
			}
		})
	}
	return target
}
