package seq

import (
	"github.com/samber/lo"

	"github.com/ib-77/lambda/pkg/lambda/fn"
)

// Flatten removes every level of []any nesting from xs.
func Flatten(xs []any) []any {
	out := make([]any, 0, len(xs))
	for _, x := range xs {
		if inner, ok := x.([]any); ok {
			out = append(out, Flatten(inner)...)
			continue
		}
		out = append(out, x)
	}
	return out
}

// Zip groups the i-th elements of every list. The first list decides the
// length; shorter lists contribute zero values.
func Zip[T any](xss ...[]T) [][]T {
	if len(xss) == 0 {
		return [][]T{}
	}

	return lo.Map(xss[0], func(_ T, i int) []T {
		return lo.Map(xss, func(xs []T, _ int) T {
			if i < len(xs) {
				return xs[i]
			}
			var zero T
			return zero
		})
	})
}

// ZipWith zips the lists and spreads every group into a call of f.
func ZipWith(f any, xss ...[]any) []any {
	return lo.Map(Zip(xss...), func(group []any, _ int) any {
		return fn.Apply(f, group)
	})
}

// ToAny widens a typed list to []any for use with dynamic helpers.
func ToAny[T any](xs []T) []any {
	return lo.Map(xs, func(x T, _ int) any {
		return x
	})
}
