package fn

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/singleflight"
)

type memo[K comparable, R any] struct {
	f func(K) R

	mu     sync.Mutex
	cache  map[K]R
	flight map[K]string // in-flight call id per key
	nextID uint64
	calls  singleflight.Group
}

// Memoize returns a wrapper that caches f's result per argument value. The
// first call with a given key computes f(key) and stores it; later calls with
// an equal key return the stored result. The cache lives as long as the
// wrapper and is never evicted.
//
// Concurrent first calls for the same key share a single call to f.
//
// Functions of several arguments, or of arguments that are not comparable,
// must be adapted first, typically by memoizing over [Key]:
//
//	area := fn.Memoize(func(k string) float64 { ... })
//	area(fn.Key(w, h))
//
// The wrapper panics with an error wrapping [ErrUnhashableKey] when an
// interface-typed key holds a value that cannot be compared.
func Memoize[K comparable, R any](f func(K) R) func(K) R {
	m := &memo[K, R]{f: f, cache: make(map[K]R), flight: make(map[K]string)}
	return m.call
}

func (m *memo[K, R]) call(k K) R {
	if v := any(k); v != nil && !reflect.ValueOf(v).Comparable() {
		panic(fmt.Errorf("%w: %T", ErrUnhashableKey, v))
	}
	id, r, ok := m.begin(k)
	if ok {
		return r
	}
	v, _, _ := m.calls.Do(id, func() (any, error) {
		if r, ok := m.lookup(k); ok {
			return r, nil
		}
		r := m.f(k)
		m.mu.Lock()
		m.cache[k] = r
		delete(m.flight, k)
		m.mu.Unlock()
		return r, nil
	})
	r, _ = v.(R)
	return r
}

// begin returns the cached result for k, or the id under which callers for k
// share a call. Ids are never reused, so distinct keys never share a call.
func (m *memo[K, R]) begin(k K) (string, R, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.cache[k]; ok {
		return "", r, true
	}
	id, ok := m.flight[k]
	if !ok {
		m.nextID++
		id = strconv.FormatUint(m.nextID, 10)
		m.flight[k] = id
	}
	var zero R
	return id, zero, false
}

func (m *memo[K, R]) lookup(k K) (R, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.cache[k]
	return r, ok
}

// Key combines args into a single string suitable as a [Memoize] key.
//
// Each argument is identified by its dynamic type and, for pointers, its
// address, otherwise its Go-syntax representation (%#v). So Key(1, "a")
// differs from Key("1", "a") and from Key(1, "a", nil), and two pointers to
// equal structs give different keys. Slices, maps and structs are identified
// by content. The encoding is hashed with BLAKE2b-256, so the key has a fixed
// length whatever the size of the arguments.
func Key(args ...any) string {
	h, _ := blake2b.New256(nil)
	for _, a := range args {
		format := "%T=%#v"
		if a != nil && reflect.TypeOf(a).Kind() == reflect.Pointer {
			format = "%T=%p"
		}
		s := fmt.Sprintf(format, a, a)
		fmt.Fprintf(h, "%d:%s;", len(s), s)
	}
	return hex.EncodeToString(h.Sum(nil))
}
