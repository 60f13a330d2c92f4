package fn

import "sync"

// Once returns a wrapper that calls f on its first invocation, with that
// invocation's arguments, and caches the result. Every later invocation
// returns the cached result without calling f, whatever its arguments.
//
// The wrapper is safe for concurrent use; concurrent first callers block
// until f has returned. If f panics, later calls return the zero value.
func Once[A, R any](f func(...A) R) func(...A) R {
	var (
		once   sync.Once
		result R
	)
	return func(args ...A) R {
		once.Do(func() {
			result = f(args...)
		})
		return result
	}
}
