package fn

import "errors"

// ErrUnhashableKey is the panic value (wrapped) raised by a memoized function
// when its key holds a value Go cannot compare, such as a slice stored in an
// interface-typed key.
var ErrUnhashableKey = errors.New("fn: memoize key is not hashable")
