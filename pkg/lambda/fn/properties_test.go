package fn

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ib-77/lambda/pkg/lambda"
)

func toAny(xs []string) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func TestLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	small := gen.IntRange(-1000, 1000)

	f3 := func(a, b, c int) int { return a*100 - b*10 + c }
	curried := Curry(f3)

	properties.Property("curried supply order is irrelevant", prop.ForAll(
		func(a, b, c int) bool {
			want := f3(a, b, c)
			return curried.Bind(a).Bind(b)(c) == want &&
				curried.Bind(a, b)(c) == want &&
				curried.Bind(a)(b, c) == want &&
				curried(a, b, c) == want
		},
		small, small, small,
	))

	minus := func(x, y int) int { return x - y }
	properties.Property("flip swaps two arguments", prop.ForAll(
		func(x, y int) bool {
			return Flip(minus)(x, y) == minus(y, x)
		},
		small, small,
	))

	properties.Property("flip3 reverses three arguments", prop.ForAll(
		func(x, y, z int) bool {
			return Flip3(f3)(x, y, z) == f3(z, y, x)
		},
		small, small, small,
	))

	properties.Property("nflip reverses any argument list", prop.ForAll(
		func(xs []string) bool {
			want := toAny(xs)
			slices.Reverse(want)
			got, ok := NFlip(Variadic)(toAny(xs)...).([]any)
			return ok && slices.Equal(got, want)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }
	properties.Property("compose and sequence are mirror images", prop.ForAll(
		func(x int) bool {
			want := inc(double(x))
			return Compose(inc, double)(x) == want && Sequence(double, inc)(x) == want
		},
		small,
	))

	properties.Property("partial with holes matches the direct call", prop.ForAll(
		func(a, b, c int) bool {
			return Partial(f3, lambda.Placeholder, b, lambda.Placeholder)(a, c) == f3(a, b, c) &&
				Partial(f3, a)(b, c) == f3(a, b, c)
		},
		small, small, small,
	))

	properties.Property("over transforms both operands", prop.ForAll(
		func(x, y int) bool {
			return Over(minus, double, x, y) == minus(double(x), double(y))
		},
		small, small,
	))

	properties.TestingRun(t)
}
