package fn

import (
	"slices"

	"go.uber.org/zap"

	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/core"
)

// Partial fixes args of f ahead of time. Any of them may be
// lambda.Placeholder; the returned lambda.Fn appends its own arguments and
// then fills the holes.
//
// Holes are filled scanning from the last one to the first, each taking the
// current last argument. With exactly as many fill arguments as holes the
// first fill lands in the first hole:
//
//	Partial(f, Placeholder, "b", Placeholder)("a", "c") // f("a", "b", "c")
//
// Surplus fill arguments stay at the tail in their original order, with the
// holes consuming the trailing ones. Only the fixed arguments are scanned
// for holes: a Placeholder passed as a fill argument is an ordinary value.
// Fewer fill arguments than holes panics with lambda.ErrArityMismatch
// before f runs.
func Partial(f any, args ...any) lambda.Fn {
	call := core.MustFn(f)
	fixed := slices.Clone(args)
	holes := lambda.CountPlaceholders(fixed)

	return func(fill ...any) any {
		if len(fill) < holes {
			if ce := lambda.Debug("partial under-filled"); ce != nil {
				ce.Write(zap.Int("placeholders", holes), zap.Int("fill", len(fill)))
			}
			lambda.Raise("%w: %d placeholder(s) but %d fill argument(s)", lambda.ErrArityMismatch, holes, len(fill))
		}

		all := make([]any, 0, len(fixed)+len(fill))
		all = append(all, fixed...)
		all = append(all, fill...)

		for i := len(fixed) - 1; i >= 0; i-- {
			if lambda.IsPlaceholder(all[i]) {
				last := len(all) - 1
				all[i] = all[last]
				all = all[:last]
			}
		}

		return call(all...)
	}
}
