package fn

import (
	"slices"

	"go.uber.org/zap"

	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/core"
)

// NCurry returns a curried form of f that collects arguments over any number
// of calls, starting from seed. While fewer than n arguments are collected a
// call returns the next lambda.Fn; the call that reaches n invokes f with
// everything collected, surplus included, and returns its result.
//
// It panics with lambda.ErrInvalidArgument when f is not a function.
func NCurry(n int, f any, seed ...any) lambda.Fn {
	return ncurry(n, core.MustFn(f), slices.Clone(seed))
}

func ncurry(n int, f lambda.Fn, acc []any) lambda.Fn {
	return func(bs ...any) any {
		combined := make([]any, 0, len(acc)+len(bs))
		combined = append(combined, acc...)
		combined = append(combined, bs...)

		if len(combined) < n {
			return ncurry(n, f, combined)
		}

		if ce := lambda.Debug("curry saturated"); ce != nil {
			ce.Write(zap.Int("arity", n), zap.Int("args", len(combined)))
		}
		return f(combined...)
	}
}

// Curry is NCurry with n read from f's declared arity, once, at wrap time.
// Functions of arity 0 or 1 gain nothing from currying and are returned as
// a direct lambda.Fn; a lambda.Fn is returned as is.
func Curry(f any) lambda.Fn {
	n, err := core.ArityOf(f)
	if err != nil {
		panic(err)
	}
	if n <= 1 {
		return core.MustFn(f)
	}
	return NCurry(n, f)
}
