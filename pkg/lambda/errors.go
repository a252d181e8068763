package lambda

import (
	"errors"
	"fmt"
)

var (
	// ErrArityMismatch is raised when a call supplies fewer values than the
	// slots it has to fill.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrInvalidArgument is raised when a value is not usable where it was
	// passed: a non-function given as a callable, or an argument that does
	// not fit the declared parameter type.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCancelled       = errors.New("operation cancelled")
)

// Recover converts a panic carrying an error into *err. Panics with any
// other payload are re-raised. Use it deferred:
//
//	defer lambda.Recover(&err)
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok {
		panic(r)
	}
	*err = e
}

// Raise panics with an error built like fmt.Errorf. Dynamic callables have
// no error return, so the engine reports new failures this way; errors
// that already exist are re-panicked as they are.
func Raise(format string, args ...any) {
	panic(fmt.Errorf(format, args...))
}
