package fn

import (
	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/core"
)

// Unary forwards exactly the first argument to f, waiting until one is given.
func Unary(f any) lambda.Fn {
	call := core.MustFn(f)
	return NCurry(1, func(as ...any) any {
		return call(as[0])
	})
}

// Binary forwards exactly the first two arguments to f, collecting them
// over as many calls as needed.
func Binary(f any) lambda.Fn {
	call := core.MustFn(f)
	return NCurry(2, func(as ...any) any {
		return call(as[0], as[1])
	})
}

// Nary forwards at most the first n arguments of each call to f. A
// negative n counts from the end, as in seq.Slice: Nary(-1, f) drops the
// last argument. Curry(Nary) gives the curried form Nary(n)(f).
func Nary(n int, f any) lambda.Fn {
	call := core.MustFn(f)
	return func(as ...any) any {
		keep := n
		if keep < 0 {
			keep = max(len(as)+keep, 0)
		}
		if len(as) > keep {
			as = as[:keep]
		}
		return call(as...)
	}
}
