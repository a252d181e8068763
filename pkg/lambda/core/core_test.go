package core

import (
	"context"
	"errors"
	"math"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/lambda/pkg/lambda"
)

type celsius float64

func TestArityOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    any
		want int
	}{
		{"nullary", func() int { return 0 }, 0},
		{"unary", func(x int) int { return x }, 1},
		{"ternary", func(x, y, z int) int { return x + y + z }, 3},
		{"variadic only", func(xs ...int) int { return len(xs) }, 0},
		{"fixed then variadic", func(s string, xs ...int) int { return len(xs) }, 1},
		{"dynamic fn", lambda.Fn(func(args ...any) any { return nil }), 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			n, err := ArityOf(tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestArityOf_NotCallable(t *testing.T) {
	t.Parallel()

	var nilFunc func(int) int
	for _, v := range []any{nil, 42, "f", nilFunc} {
		_, err := ArityOf(v)
		assert.ErrorIs(t, err, lambda.ErrInvalidArgument)
	}

	assert.False(t, IsCallable(3))
	assert.True(t, IsCallable(strconv.Itoa))
	assert.Panics(t, func() { MustArity("nope") })
}

func TestCall_Conversions(t *testing.T) {
	t.Parallel()

	add := func(x, y int) int { return x + y }

	res, err := Call(add, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, res)

	// numeric kinds convert, JSON numbers arrive as float64
	res, err = Call(add, float64(1), int64(2))
	require.NoError(t, err)
	assert.Equal(t, 3, res)

	// missing trailing arguments become zero values
	res, err = Call(add, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, res)

	// surplus arguments are dropped for fixed arity
	res, err = Call(add, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res)

	// nil becomes the zero value
	res, err = Call(add, nil, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, res)

	_, err = Call(add, "one", 2)
	assert.ErrorIs(t, err, lambda.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "argument 0")

	res, err = Call(func(c celsius) float64 { return float64(c) }, 21.5)
	require.NoError(t, err)
	assert.Equal(t, 21.5, res)

	res, err = Call(func(x uint8) uint8 { return x }, 255.0)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), res)

	res, err = Call(func(x float32) float32 { return x }, 1.5)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), res)
}

func TestCall_LossyNumbersRejected(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		f    any
		arg  any
	}{
		{"overflow uint8", func(x uint8) uint8 { return x }, 300},
		{"overflow int8 from uint", func(x int8) int8 { return x }, uint(200)},
		{"uint64 past int64", func(x int64) int64 { return x }, uint64(math.MaxUint64)},
		{"fraction to int", func(x int) int { return x }, 1.9},
		{"negative to uint", func(x uint) uint { return x }, -1},
		{"negative float to uint", func(x uint) uint { return x }, -1.0},
		{"float past int64", func(x int64) int64 { return x }, 1e19},
		{"nan to int", func(x int) int { return x }, math.NaN()},
		{"float64 past float32", func(x float32) float32 { return x }, 1e300},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Call(tc.f, tc.arg)
			assert.ErrorIs(t, err, lambda.ErrInvalidArgument)
			assert.Contains(t, err.Error(), "does not fit")
		})
	}
}

func TestCall_Variadic(t *testing.T) {
	t.Parallel()

	join := func(sep string, parts ...string) string {
		out := ""
		for i, p := range parts {
			if i > 0 {
				out += sep
			}
			out += p
		}
		return out
	}

	res, err := Call(join, "-", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a-b-c", res)

	res, err = Call(join, "-")
	require.NoError(t, err)
	assert.Equal(t, "", res)
}

func TestCall_Results(t *testing.T) {
	t.Parallel()

	res, err := Call(func() {})
	require.NoError(t, err)
	assert.Nil(t, res)

	res, err = Call(func(x int) (int, string) { return x, strconv.Itoa(x) }, 7)
	require.NoError(t, err)
	assert.Equal(t, []any{7, "7"}, res)

	res, err = Call(strconv.Atoi, "12")
	require.NoError(t, err)
	assert.Equal(t, 12, res)

	_, err = Call(strconv.Atoi, "twelve")
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)

	_, err = Call(func() error { return errors.New("plain") })
	assert.EqualError(t, err, "plain")
}

func TestCall_SlicesAndMaps(t *testing.T) {
	t.Parallel()

	sum := func(xs []int) int {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	}

	res, err := Call(sum, []any{1.0, 2.0, 3.0})
	require.NoError(t, err)
	assert.Equal(t, 6, res)

	keys := func(m map[string]int) int { return len(m) }
	res, err = Call(keys, map[string]any{"a": 1.0, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res)

	_, err = Call(sum, []any{"x"})
	assert.ErrorIs(t, err, lambda.ErrInvalidArgument)
}

func TestAdapt_FuncArguments(t *testing.T) {
	t.Parallel()

	mapInts := func(f func(int) int, xs []int) []int {
		out := make([]int, len(xs))
		for i, x := range xs {
			out[i] = f(x)
		}
		return out
	}

	double := lambda.Fn(func(args ...any) any { return args[0].(int) * 2 })
	res, err := Call(mapInts, double, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, res)

	// a differently typed concrete func is adapted as well
	scale := func(x float64) float64 { return x * 1.5 }
	res, err = Call(mapInts, scale, []int{2, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, res)

	// results are converted with the same checks as arguments
	assert.PanicsWithError(t, "result: invalid argument: 1.5 does not fit int", func() {
		_, _ = Call(mapInts, scale, []int{1})
	})
}

func TestAdapt_ErrorResult(t *testing.T) {
	t.Parallel()

	target := reflect.TypeOf((func(string) (int, error))(nil))
	v, err := Adapt(lambda.Fn(func(args ...any) any {
		return len(args[0].(string))
	}), target)
	require.NoError(t, err)

	f := v.Interface().(func(string) (int, error))
	n, err := f("four")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	failing, err := Adapt(strconv.Atoi, target)
	require.NoError(t, err)
	_, err = failing.Interface().(func(string) (int, error))("x")
	assert.Error(t, err)

	plain, err := Adapt(strconv.Atoi, reflect.TypeOf((func(string) int)(nil)))
	require.NoError(t, err)
	assert.Panics(t, func() { plain.Interface().(func(string) int)("x") })

	_, err = Adapt(strconv.Atoi, reflect.TypeOf(0))
	assert.ErrorIs(t, err, lambda.ErrInvalidArgument)
}

func TestAdapt_Variadic(t *testing.T) {
	t.Parallel()

	count := lambda.Fn(func(args ...any) any { return len(args) })
	v, err := Adapt(count, reflect.TypeOf((func(string, ...int) int)(nil)))
	require.NoError(t, err)

	f := v.Interface().(func(string, ...int) int)
	assert.Equal(t, 4, f("a", 1, 2, 3))
	assert.Equal(t, 1, f("a"))
}

func TestToFn(t *testing.T) {
	t.Parallel()

	f, err := ToFn(strconv.Itoa)
	require.NoError(t, err)
	assert.Equal(t, "3", f(3))

	assert.PanicsWithError(t, `argument 0: invalid argument: cannot use string as int`, func() {
		f("3")
	})

	same := lambda.Fn(func(args ...any) any { return len(args) })
	g, err := ToFn(same)
	require.NoError(t, err)
	assert.Equal(t, 2, g(1, 2))

	_, err = ToFn(1)
	assert.ErrorIs(t, err, lambda.ErrInvalidArgument)
	assert.Panics(t, func() { MustFn(1) })
}

func TestOptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 4, GetWorkerMaxCount(ctx, 4))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 4))
	assert.Equal(t, 4, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 4))

	assert.False(t, IsFailFastEnabled(ctx, false))
	assert.True(t, IsFailFastEnabled(WithFailFast(ctx, true), false))
}
