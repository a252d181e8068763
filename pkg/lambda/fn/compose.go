package fn

import (
	"slices"

	"github.com/samber/mo"

	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/core"
)

// Compose chains fs right to left: Compose(f, g, h)(args...) is
// f(g(h(args...))). Only the rightmost function sees the call's arguments;
// every other one receives the previous result. A single function is
// returned unchanged. It panics with lambda.ErrInvalidArgument when fs is
// empty or holds a non-function.
func Compose(fs ...any) lambda.Fn {
	if len(fs) == 0 {
		lambda.Raise("%w: compose needs at least one function", lambda.ErrInvalidArgument)
	}

	calls := make([]lambda.Fn, len(fs))
	for i, f := range fs {
		calls[i] = core.MustFn(f)
	}
	if len(calls) == 1 {
		return calls[0]
	}

	return func(args ...any) any {
		res := calls[len(calls)-1](args...)
		for i := len(calls) - 2; i >= 0; i-- {
			res = calls[i](res)
		}
		return res
	}
}

// Sequence is Compose over the reversed list: functions run left to right.
func Sequence(fs ...any) lambda.Fn {
	reversed := slices.Clone(fs)
	slices.Reverse(reversed)
	return Compose(reversed...)
}

// PCompose applies fs position by position: the returned function maps xs[i]
// to fs[i](xs[i]). Positions without a function, or whose entry is not
// callable, yield mo.None. The output always has len(xs) entries.
func PCompose(fs ...any) func(xs []any) []mo.Option[any] {
	calls := make([]lambda.Fn, len(fs))
	for i, f := range fs {
		if core.IsCallable(f) {
			calls[i] = core.MustFn(f)
		}
	}

	return func(xs []any) []mo.Option[any] {
		out := make([]mo.Option[any], len(xs))
		for i, x := range xs {
			if i < len(calls) && calls[i] != nil {
				out[i] = mo.Some(calls[i](x))
			} else {
				out[i] = mo.None[any]()
			}
		}
		return out
	}
}

// Over combines x and y with f after transforming both with g:
// f(g(x), g(y)).
func Over(f, g, x, y any) any {
	transform := core.MustFn(g)
	return core.MustFn(f)(transform(x), transform(y))
}
