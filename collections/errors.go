package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by collection operations.
//
// Use [errors.Is] for comparisons; the typed errors below unwrap to them.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrTooManyInitialValues is returned by [Reduce] when more than one
	// initial accumulator is supplied.
	ErrTooManyInitialValues = errors.New("collections: reduce accepts at most one initial value")

	// ErrNotCallable is returned by [Invoke] when an element has neither a
	// method nor a function-valued attribute with the requested name.
	ErrNotCallable = errors.New("collections: attribute is not callable")

	// ErrArgumentMismatch is returned by [Invoke] when the supplied arguments
	// cannot be passed to the resolved callable.
	ErrArgumentMismatch = errors.New("collections: arguments do not match the callable's signature")
)

// EmptyReduceError is returned by [Reduce] when the collection is empty and
// no initial value was supplied, so no seed for the fold exists.
type EmptyReduceError struct {
	Kind Kind
}

// Error implements the error interface.
func (e *EmptyReduceError) Error() string {
	return fmt.Sprintf("collections: reduce of empty %s with no initial value", e.Kind)
}

// Unwrap returns [ErrEmptyCollection].
func (e *EmptyReduceError) Unwrap() error { return ErrEmptyCollection }

// InvocationError is returned by [Invoke] when the named method cannot be
// resolved or called on an element, or when the call itself returns an error.
type InvocationError struct {
	// Element is the collection element the call was attempted on.
	Element any
	// Method is the requested method or attribute name.
	Method string
	// Cause is ErrNotCallable, ErrArgumentMismatch (possibly wrapped), or the
	// error returned by the method.
	Cause error
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	return fmt.Sprintf("collections: invoke %q on %v (%T): %v", e.Method, e.Element, e.Element, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *InvocationError) Unwrap() error { return e.Cause }
