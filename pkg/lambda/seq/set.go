package seq

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// UniqueBy keeps the first element of every group sharing the same key.
func UniqueBy[T any, K comparable](f func(T) K, xs []T) []T {
	return lo.UniqBy(xs, f)
}

// Unique keeps the first occurrence of every element.
func Unique[T comparable](xs []T) []T {
	return lo.Uniq(xs)
}

// Dups returns every element that repeats an earlier one, once per repetition.
func Dups[T comparable](xs []T) []T {
	return lo.Filter(xs, func(x T, i int) bool {
		return lo.IndexOf(xs, x) != i
	})
}

// Union concatenates the lists and removes repeated elements.
func Union[T comparable](xss ...[]T) []T {
	return lo.Union(xss...)
}

// Intersection returns the distinct elements of the first list that occur in
// every other list, in first-list order.
func Intersection[T comparable](xss ...[]T) []T {
	if len(xss) == 0 {
		return []T{}
	}

	return lo.Filter(Unique(xss[0]), func(x T, _ int) bool {
		return lo.EveryBy(xss[1:], func(ys []T) bool {
			return lo.Contains(ys, x)
		})
	})
}

// GroupBy buckets xs by key, keeping element order inside each bucket.
func GroupBy[T any, K comparable](f func(T) K, xs []T) map[K][]T {
	return lo.GroupBy(xs, f)
}

// CountBy counts the elements of xs per key.
func CountBy[T any, K comparable](f func(T) K, xs []T) map[K]int {
	return lo.CountValuesBy(xs, f)
}

// SortBy returns a copy of xs stably sorted by key.
func SortBy[T any, K constraints.Ordered](f func(T) K, xs []T) []T {
	out := slices.Clone(xs)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(f(a), f(b))
	})
	return out
}

// Shuffle returns a randomly permuted copy of xs.
func Shuffle[T any](xs []T) []T {
	return lo.Shuffle(slices.Clone(xs))
}

// Range lists the numbers from m to n inclusive, counting down when n < m.
func Range[T constraints.Integer | constraints.Float](m, n T) []T {
	out := []T{}
	if m <= n {
		for i := m; i <= n; i++ {
			out = append(out, i)
			if n-i < 1 {
				break
			}
		}
		return out
	}

	for i := m; i >= n; i-- {
		out = append(out, i)
		if i-n < 1 {
			break
		}
	}
	return out
}

// Permutations lists every ordering of xs. The empty list has exactly one
// permutation, itself.
func Permutations[T any](xs []T) [][]T {
	if len(xs) == 0 {
		return [][]T{{}}
	}

	var out [][]T
	for i, x := range xs {
		others := slices.Delete(slices.Clone(xs), i, i+1)
		for _, p := range Permutations(others) {
			out = append(out, append([]T{x}, p...))
		}
	}
	return out
}

// Powerset lists every subset of xs, interleaving the subsets without the
// head with those that contain it.
func Powerset[T any](xs []T) [][]T {
	if len(xs) == 0 {
		return [][]T{{}}
	}

	tail := Powerset(xs[1:])
	withHead := lo.Map(tail, func(ys []T, _ int) []T {
		return append([]T{xs[0]}, ys...)
	})
	return lo.Interleave(tail, withHead)
}
