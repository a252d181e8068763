package seq

import (
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Slice returns a copy of xs[i:j]. Negative positions count from the end and
// out-of-range positions are clamped, so Slice never panics.
func Slice[T any](i, j int, xs []T) []T {
	from, to := clamp(i, len(xs)), clamp(j, len(xs))
	if from >= to {
		return []T{}
	}
	return slices.Clone(xs[from:to])
}

// SliceFrom returns a copy of xs from position i to the end.
func SliceFrom[T any](i int, xs []T) []T {
	return Slice(i, len(xs), xs)
}

func clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

func First[T any](xs []T) mo.Option[T] {
	if len(xs) == 0 {
		return mo.None[T]()
	}
	return mo.Some(xs[0])
}

func Last[T any](xs []T) mo.Option[T] {
	if len(xs) == 0 {
		return mo.None[T]()
	}
	return mo.Some(xs[len(xs)-1])
}

// Rest is every element but the first.
func Rest[T any](xs []T) []T {
	return SliceFrom(1, xs)
}

// Initial is every element but the last.
func Initial[T any](xs []T) []T {
	return Slice(0, -1, xs)
}

// Take returns the first n elements. A negative n leaves off the last -n.
func Take[T any](n int, xs []T) []T {
	return Slice(0, n, xs)
}

// Drop returns xs without its first n elements.
func Drop[T any](n int, xs []T) []T {
	return SliceFrom(n, xs)
}

// Remove returns a copy of xs without the first occurrence of x. When x is
// absent the copy is unchanged.
func Remove[T comparable](x T, xs []T) []T {
	out := slices.Clone(xs)
	if i := slices.Index(out, x); i >= 0 {
		out = slices.Delete(out, i, i+1)
	}
	return out
}

// Interleave alternates the elements of xs and ys; the tail of the longer
// list is appended once the shorter one runs out.
func Interleave[T any](xs, ys []T) []T {
	return lo.Interleave(xs, ys)
}

// Intersperse places sep between every two elements of xs.
func Intersperse[T any](sep T, xs []T) []T {
	if len(xs) == 0 {
		return []T{}
	}

	out := make([]T, 0, 2*len(xs)-1)
	out = append(out, xs[0])
	for _, x := range xs[1:] {
		out = append(out, sep, x)
	}
	return out
}

// Intercalate joins xss with sep inserted between every two lists.
func Intercalate[T any](sep []T, xss [][]T) []T {
	return Concat(Intersperse(sep, xss)...)
}
