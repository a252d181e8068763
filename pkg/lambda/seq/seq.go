// Package seq holds list helpers in data-last argument order, so that they
// curry and partially apply naturally with package fn:
//
//	take3 := fn.Partial(seq.Take[any], 3)
//	take3(xs)
//
// Helpers never mutate their input; whenever a list is returned it is a new
// one.
package seq

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Fold reduces xs from the left, starting with init.
func Fold[T, R any](init R, f func(R, T) R, xs []T) R {
	return lo.Reduce(xs, func(acc R, x T, _ int) R {
		return f(acc, x)
	}, init)
}

// Fold1 reduces xs from the left using its first element as the seed.
// An empty list yields mo.None.
func Fold1[T any](f func(T, T) T, xs []T) mo.Option[T] {
	if len(xs) == 0 {
		return mo.None[T]()
	}
	return mo.Some(Fold(xs[0], f, xs[1:]))
}

// Foldr reduces xs from the right, starting with init.
func Foldr[T, R any](init R, f func(R, T) R, xs []T) R {
	return lo.ReduceRight(xs, func(acc R, x T, _ int) R {
		return f(acc, x)
	}, init)
}

// Foldr1 reduces xs from the right using its last element as the seed.
func Foldr1[T any](f func(T, T) T, xs []T) mo.Option[T] {
	if len(xs) == 0 {
		return mo.None[T]()
	}
	last := len(xs) - 1
	return mo.Some(Foldr(xs[last], f, xs[:last]))
}

func Map[T, R any](f func(T) R, xs []T) []R {
	return lo.Map(xs, func(x T, _ int) R {
		return f(x)
	})
}

func Filter[T any](f func(T) bool, xs []T) []T {
	return lo.Filter(xs, func(x T, _ int) bool {
		return f(x)
	})
}

// Any reports whether f holds for at least one element.
func Any[T any](f func(T) bool, xs []T) bool {
	return lo.SomeBy(xs, f)
}

// All reports whether f holds for every element. It is true for an empty list.
func All[T any](f func(T) bool, xs []T) bool {
	return lo.EveryBy(xs, f)
}

func Each[T any](f func(T), xs []T) {
	lo.ForEach(xs, func(x T, _ int) {
		f(x)
	})
}

// IndexOf returns the position of the first x in xs, or -1.
func IndexOf[T comparable](x T, xs []T) int {
	return lo.IndexOf(xs, x)
}

// InArray reports whether x is an element of xs.
func InArray[T comparable](xs []T, x T) bool {
	return lo.Contains(xs, x)
}

// Concat joins the lists end to end.
func Concat[T any](xss ...[]T) []T {
	return lo.Flatten(xss)
}

// FlatMap maps every element to a list and concatenates the results.
func FlatMap[T, R any](f func(T) []R, xs []T) []R {
	return lo.FlatMap(xs, func(x T, _ int) []R {
		return f(x)
	})
}
