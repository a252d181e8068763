package core

import (
	"fmt"
	"reflect"

	"github.com/ib-77/lambda/pkg/lambda"
)

// ArityOf returns the number of parameters f declares, not counting a
// trailing variadic parameter. A lambda.Fn therefore has arity 0.
func ArityOf(f any) (int, error) {
	t, err := funcType(f)
	if err != nil {
		return 0, err
	}

	n := t.NumIn()
	if t.IsVariadic() {
		n--
	}
	return n, nil
}

// MustArity is ArityOf for callers that have already validated f.
// It panics with the ArityOf error otherwise.
func MustArity(f any) int {
	n, err := ArityOf(f)
	if err != nil {
		panic(err)
	}
	return n
}

// IsCallable reports whether f is a non-nil function value.
func IsCallable(f any) bool {
	_, err := funcType(f)
	return err == nil
}

func funcType(f any) (reflect.Type, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil is not a function", lambda.ErrInvalidArgument)
	}

	t := reflect.TypeOf(f)
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T is not a function", lambda.ErrInvalidArgument, f)
	}
	if reflect.ValueOf(f).IsNil() {
		return nil, fmt.Errorf("%w: nil %T", lambda.ErrInvalidArgument, f)
	}
	return t, nil
}
