// Package deep works on loosely typed records: the map[string]any and []any
// trees produced by decoding JSON or YAML. Keys are always visited in sorted
// order so results are deterministic.
package deep

import (
	"fmt"
	"reflect"
	"slices"

	"golang.org/x/exp/maps"
)

// Object is a decoded record.
type Object = map[string]any

func sortedKeys(obj Object) []string {
	keys := maps.Keys(obj)
	slices.Sort(keys)
	return keys
}

// ToObject builds a record from a flat key/value list: [k1, v1, k2, v2, ...].
// Keys are formatted with fmt.Sprint; a trailing key without value is ignored.
func ToObject(xs []any) Object {
	obj := make(Object, len(xs)/2)
	for i := 1; i < len(xs); i += 2 {
		obj[fmt.Sprint(xs[i-1])] = xs[i]
	}
	return obj
}

// Extend copies the entries of every source into target, later sources
// winning, and returns target.
func Extend(target Object, sources ...Object) Object {
	for _, src := range sources {
		maps.Copy(target, src)
	}
	return target
}

// DeepExtend is Extend that merges nested records instead of replacing them.
// Nested values taken from a source are cloned, so target never aliases a
// source. A nil target is allocated.
func DeepExtend(target Object, sources ...Object) Object {
	if target == nil {
		target = Object{}
	}

	for _, src := range sources {
		for _, k := range sortedKeys(src) {
			nested, ok := src[k].(Object)
			if !ok {
				target[k] = DeepClone(src[k])
				continue
			}

			existing, _ := target[k].(Object)
			target[k] = DeepExtend(existing, nested)
		}
	}
	return target
}

// DeepClone copies x, recursing into records and lists. Other values are
// returned as they are.
func DeepClone(x any) any {
	switch v := x.(type) {
	case Object:
		out := make(Object, len(v))
		for k, e := range v {
			out[k] = DeepClone(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = DeepClone(e)
		}
		return out
	}
	return x
}

// ForOwn folds obj in key order, passing the accumulator, key, value and
// position to f.
func ForOwn[A any](acc A, f func(acc A, k string, v any, i int) A, obj Object) A {
	for i, k := range sortedKeys(obj) {
		acc = f(acc, k, obj[k], i)
	}
	return acc
}

// Values lists the values of obj in key order.
func Values(obj Object) []any {
	return ForOwn([]any{}, func(acc []any, _ string, v any, _ int) []any {
		return append(acc, v)
	}, obj)
}

// Pairs lists the [key, value] pairs of obj in key order.
func Pairs(obj Object) [][]any {
	return ForOwn([][]any{}, func(acc [][]any, k string, v any, _ int) [][]any {
		return append(acc, []any{k, v})
	}, obj)
}

// ZipObject pairs keys with values by position. Keys without a value map
// to nil; surplus values are dropped.
func ZipObject(keys []any, values []any) Object {
	obj := make(Object, len(keys))
	for i, k := range keys {
		var v any
		if i < len(values) {
			v = values[i]
		}
		obj[fmt.Sprint(k)] = v
	}
	return obj
}

// UnzipObject is the inverse of ZipObject.
func UnzipObject(obj Object) ([]string, []any) {
	return sortedKeys(obj), Values(obj)
}

// Equal compares decoded values. Numbers compare by value whatever their Go
// type, so a YAML int matches a JSON float64. Everything else is compared
// with reflect.DeepEqual.
func Equal(a, b any) bool {
	fa, aok := number(a)
	fb, bok := number(b)
	if aok && bok {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func number(x any) (float64, bool) {
	if x == nil {
		return 0, false
	}

	v := reflect.ValueOf(x)
	switch {
	case v.CanInt():
		return float64(v.Int()), true
	case v.CanUint():
		return float64(v.Uint()), true
	case v.CanFloat():
		return v.Float(), true
	}
	return 0, false
}
