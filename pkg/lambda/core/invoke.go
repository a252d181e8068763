package core

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/ib-77/lambda/pkg/lambda"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Call invokes f with args.
//
// Arguments are converted to the declared parameter types (see Convert).
// Missing trailing parameters receive their zero value; surplus arguments
// are passed on to a variadic parameter and dropped otherwise.
//
// A trailing error result is returned as Call's error. The remaining
// results collapse to nil, a single value, or a []any.
func Call(f any, args ...any) (any, error) {
	switch g := f.(type) {
	case lambda.Fn:
		return g(args...), nil
	case func(...any) any:
		return g(args...), nil
	}

	t, err := funcType(f)
	if err != nil {
		return nil, err
	}

	in, err := convertArgs(t, args)
	if err != nil {
		return nil, err
	}

	return collect(t, reflect.ValueOf(f).Call(in))
}

// ToFn wraps f as a lambda.Fn. A failing call panics with the Call error.
func ToFn(f any) (lambda.Fn, error) {
	switch g := f.(type) {
	case lambda.Fn:
		return g, nil
	case func(...any) any:
		return g, nil
	}

	if _, err := funcType(f); err != nil {
		return nil, err
	}

	return func(args ...any) any {
		res, err := Call(f, args...)
		if err != nil {
			if ce := lambda.Debug("call failed"); ce != nil {
				ce.Write(zap.String("func", fmt.Sprintf("%T", f)), zap.Int("args", len(args)), zap.Error(err))
			}
			panic(err)
		}
		return res
	}, nil
}

// MustFn is ToFn that panics when f is not a function.
func MustFn(f any) lambda.Fn {
	g, err := ToFn(f)
	if err != nil {
		panic(err)
	}
	return g
}

func convertArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}

	n := fixed
	if t.IsVariadic() && len(args) > fixed {
		n = len(args)
	}

	in := make([]reflect.Value, n)
	for i := 0; i < fixed; i++ {
		pt := t.In(i)
		if i >= len(args) {
			in[i] = reflect.Zero(pt)
			continue
		}

		v, err := Convert(args[i], pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}

	if t.IsVariadic() {
		et := t.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			v, err := Convert(args[i], et)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			in[i] = v
		}
	}

	return in, nil
}

func collect(t reflect.Type, out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && t.Out(n-1) == errorType {
		if e, ok := out[n-1].Interface().(error); ok && e != nil {
			err = e
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}

	vals := make([]any, len(out))
	for i, o := range out {
		vals[i] = o.Interface()
	}
	return vals, err
}
