package fn

import (
	"slices"

	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/core"
)

// Flip returns a curried two-argument form of f with its arguments swapped:
// Flip(f)(x, y) calls f(y, x).
func Flip(f any) lambda.Fn {
	call := core.MustFn(f)
	return NCurry(2, func(as ...any) any {
		return call(as[1], as[0])
	})
}

// Flip3 returns a curried three-argument form of f with its arguments
// reversed: Flip3(f)(x, y, z) calls f(z, y, x).
func Flip3(f any) lambda.Fn {
	call := core.MustFn(f)
	return NCurry(3, func(as ...any) any {
		return call(as[2], as[1], as[0])
	})
}

// NFlip returns a variadic form of f that reverses its whole argument list.
func NFlip(f any) lambda.Fn {
	call := core.MustFn(f)
	return func(as ...any) any {
		reversed := slices.Clone(as)
		slices.Reverse(reversed)
		return call(reversed...)
	}
}
