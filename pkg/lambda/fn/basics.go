package fn

import (
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/core"
)

func ID(x any) any {
	return x
}

// K returns a callable that ignores its arguments and returns x.
func K(x any) lambda.Fn {
	return func(...any) any {
		return x
	}
}

// Variadic collects its arguments into a slice.
func Variadic(as ...any) []any {
	return slices.Clone(as)
}

// Apply spreads args into a call of f.
func Apply(f any, args []any) any {
	return core.MustFn(f)(args...)
}

// NotF negates the truthiness of f's result.
func NotF(f any) lambda.Fn {
	call := core.MustFn(f)
	return func(as ...any) any {
		return !Truthy(call(as...))
	}
}

var Not = NotF

// Eq is the curried identity comparison: Eq.Bind(x)(y) reports whether y is x.
var Eq = Curry(func(x, y any) bool {
	return same(x, y)
})

// NotEq is the negation of Eq.
var NotEq = Curry(func(x, y any) bool {
	return !same(x, y)
})

// IsType is the curried, case-insensitive TypeOf check:
// IsType.Bind("array")([]int{}) is true.
var IsType = Curry(func(t string, x any) bool {
	return strings.EqualFold(TypeOf(x), t)
})

// TypeOf names the kind of value x holds: Null, Boolean, Number, String,
// Array, Function, Date, RegExp or Object.
func TypeOf(x any) string {
	switch x.(type) {
	case nil:
		return "Null"
	case time.Time, *time.Time:
		return "Date"
	case *regexp.Regexp:
		return "RegExp"
	}

	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Bool:
		return "Boolean"
	case reflect.String:
		return "String"
	case reflect.Slice, reflect.Array:
		return "Array"
	case reflect.Func:
		return "Function"
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return "Null"
		}
		return TypeOf(v.Elem().Interface())
	}
	if v.CanInt() || v.CanUint() || v.CanFloat() {
		return "Number"
	}
	return "Object"
}

// Truthy reports whether v counts as true: a bool is itself, nil and zero
// values are false, everything else is true.
func Truthy(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	if lambda.IsNil(v) {
		return false
	}
	return !reflect.ValueOf(v).IsZero()
}

// same compares by value for comparable values and by identity for slices,
// maps and functions. Structs and arrays whose interface fields hold
// uncomparable values are never the same.
func same(x, y any) (eq bool) {
	if x == nil || y == nil {
		return x == nil && y == nil
	}

	tx, ty := reflect.TypeOf(x), reflect.TypeOf(y)
	if tx != ty {
		return false
	}
	if tx.Comparable() {
		defer func() {
			if recover() != nil {
				eq = false
			}
		}()
		return x == y
	}

	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	switch vx.Kind() {
	case reflect.Slice:
		return vx.Len() == vy.Len() && vx.Pointer() == vy.Pointer()
	case reflect.Map, reflect.Func:
		return vx.Pointer() == vy.Pointer()
	}
	return false
}
