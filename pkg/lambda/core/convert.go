package core

import (
	"fmt"
	"math"
	"reflect"

	"github.com/ib-77/lambda/pkg/lambda"
)

// Convert turns v into a value of type to.
//
//   - nil becomes the zero value of to
//   - assignable values pass through unchanged
//   - numbers convert between numeric kinds when the value fits: no
//     overflow, no fraction dropped, no negative into an unsigned kind
//   - slices and maps convert element by element
//   - a function passed for a differently typed func is adapted (see Adapt)
//   - named and unnamed types of the same kind convert when Go allows it
//
// Everything else fails with lambda.ErrInvalidArgument.
func Convert(v any, to reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(to), nil
	}

	rv := reflect.ValueOf(v)
	from := rv.Type()
	switch {
	case from.AssignableTo(to):
		return rv, nil
	case to.Kind() == reflect.Func && from.Kind() == reflect.Func:
		return Adapt(v, to)
	case isNumeric(from.Kind()) && isNumeric(to.Kind()):
		return convertNumber(rv, to)
	case from.Kind() == reflect.Slice && to.Kind() == reflect.Slice:
		return convertSlice(rv, to)
	case from.Kind() == reflect.Map && to.Kind() == reflect.Map:
		return convertMap(rv, to)
	case from.Kind() == to.Kind() && from.ConvertibleTo(to):
		return rv.Convert(to), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: cannot use %s as %s", lambda.ErrInvalidArgument, from, to)
}

// Adapt returns f as a value of the func type to. Calls go through Call, so
// arguments and results are converted in both directions. A failure panics
// unless to declares a trailing error result, which then receives it.
func Adapt(f any, to reflect.Type) (reflect.Value, error) {
	if to.Kind() != reflect.Func {
		return reflect.Value{}, fmt.Errorf("%w: %s is not a func type", lambda.ErrInvalidArgument, to)
	}
	if _, err := funcType(f); err != nil {
		return reflect.Value{}, err
	}

	return reflect.MakeFunc(to, func(in []reflect.Value) []reflect.Value {
		args := make([]any, 0, len(in))
		for i, a := range in {
			if to.IsVariadic() && i == len(in)-1 {
				for j := 0; j < a.Len(); j++ {
					args = append(args, a.Index(j).Interface())
				}
				break
			}
			args = append(args, a.Interface())
		}

		res, err := Call(f, args...)
		return results(to, res, err)
	}), nil
}

func results(t reflect.Type, res any, err error) []reflect.Value {
	n := t.NumOut()
	withErr := n > 0 && t.Out(n-1) == errorType
	if withErr {
		n--
	}
	if err != nil && !withErr {
		panic(err)
	}

	out := make([]reflect.Value, 0, t.NumOut())
	switch {
	case n == 1:
		out = append(out, mustConvert(res, t.Out(0), err))
	case n > 1:
		vals, ok := res.([]any)
		if !ok && err == nil {
			lambda.Raise("%w: expected %d results, got %T", lambda.ErrArityMismatch, n, res)
		}
		for i := 0; i < n; i++ {
			var v any
			if i < len(vals) {
				v = vals[i]
			}
			out = append(out, mustConvert(v, t.Out(i), err))
		}
	}

	if withErr {
		ev := reflect.Zero(errorType)
		if err != nil {
			ev = reflect.ValueOf(&err).Elem()
		}
		out = append(out, ev)
	}
	return out
}

func mustConvert(v any, to reflect.Type, callErr error) reflect.Value {
	if callErr != nil {
		return reflect.Zero(to)
	}
	rv, err := Convert(v, to)
	if err != nil {
		lambda.Raise("result: %w", err)
	}
	return rv
}

func convertSlice(rv reflect.Value, to reflect.Type) (reflect.Value, error) {
	if rv.IsNil() {
		return reflect.Zero(to), nil
	}

	out := reflect.MakeSlice(to, rv.Len(), rv.Len())
	for i := 0; i < rv.Len(); i++ {
		e, err := Convert(rv.Index(i).Interface(), to.Elem())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		out.Index(i).Set(e)
	}
	return out, nil
}

func convertMap(rv reflect.Value, to reflect.Type) (reflect.Value, error) {
	if rv.IsNil() {
		return reflect.Zero(to), nil
	}

	out := reflect.MakeMapWithSize(to, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := Convert(iter.Key().Interface(), to.Key())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key(), err)
		}
		v, err := Convert(iter.Value().Interface(), to.Elem())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("value %v: %w", iter.Key(), err)
		}
		out.SetMapIndex(k, v)
	}
	return out, nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func convertNumber(rv reflect.Value, to reflect.Type) (reflect.Value, error) {
	if !fits(rv, to) {
		return reflect.Value{}, fmt.Errorf("%w: %v does not fit %s", lambda.ErrInvalidArgument, rv, to)
	}
	return rv.Convert(to), nil
}

func fits(rv reflect.Value, to reflect.Type) bool {
	target := reflect.Zero(to)

	switch {
	case rv.CanInt():
		n := rv.Int()
		switch {
		case target.CanInt():
			return !target.OverflowInt(n)
		case target.CanUint():
			return n >= 0 && !target.OverflowUint(uint64(n))
		}
		return true
	case rv.CanUint():
		u := rv.Uint()
		switch {
		case target.CanInt():
			return u <= math.MaxInt64 && !target.OverflowInt(int64(u))
		case target.CanUint():
			return !target.OverflowUint(u)
		}
		return true
	}

	f := rv.Float()
	switch {
	case target.CanInt():
		// 2^63 is exact as a float64 and the first value past MaxInt64
		return f == math.Trunc(f) && f >= math.MinInt64 && f < math.Exp2(63) && !target.OverflowInt(int64(f))
	case target.CanUint():
		return f == math.Trunc(f) && f >= 0 && f < math.Exp2(64) && !target.OverflowUint(uint64(f))
	}
	return math.IsNaN(f) || math.IsInf(f, 0) || !target.OverflowFloat(f)
}
