// Package mass applies callables to many values concurrently.
//
// Every operation returns one lambda.Result per input position, in input
// order. Concurrency is bounded by core.WithWorkerOptions (default: the
// number of CPUs). With core.WithFailFast the first failure stops further
// scheduling and the positions that never ran are reported as cancelled, as
// are all positions left when the context ends. A callable that panics fails
// only its own position, with ErrPanicked.
package mass

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/core"
	"github.com/ib-77/lambda/pkg/lambda/fn"
)

var (
	// ErrNoCallable marks a PCompose position that has no callable to apply.
	ErrNoCallable = fmt.Errorf("%w: no callable for position", lambda.ErrInvalidArgument)
	// ErrPanicked marks a position whose callable panicked. The payload is
	// kept in the message, and wrapped when it is an error.
	ErrPanicked = errors.New("callable panicked")
)

// PCompose is the concurrent form of fn.PCompose: position i of xs is passed
// to fs[i]. Positions without a callable fail with ErrNoCallable.
func PCompose(fs ...any) func(ctx context.Context, xs []any) []lambda.Result[any] {
	return func(ctx context.Context, xs []any) []lambda.Result[any] {
		return run(ctx, len(xs), func(_ context.Context, i int) lambda.Result[any] {
			if i >= len(fs) || !core.IsCallable(fs[i]) {
				return lambda.Fail[any](fmt.Errorf("%w %d", ErrNoCallable, i))
			}
			return attempt(fs[i], xs[i])
		})
	}
}

// Map applies the callable f to every element of xs.
func Map(ctx context.Context, f any, xs []any) []lambda.Result[any] {
	return run(ctx, len(xs), func(_ context.Context, i int) lambda.Result[any] {
		return attempt(f, xs[i])
	})
}

// Try applies a typed function to every element of xs. f receives the
// group's context, which is done once the batch is cancelled.
func Try[T, U any](ctx context.Context, f func(context.Context, T) (U, error), xs []T) []lambda.Result[U] {
	return run(ctx, len(xs), func(ctx context.Context, i int) lambda.Result[U] {
		out, err := f(ctx, xs[i])
		if err != nil {
			return lambda.Fail[U](err)
		}
		return lambda.Success(out)
	})
}

// Values unpacks results in order. Any failure or cancellation makes it
// return the joined errors instead.
func Values[T any](results []lambda.Result[T]) ([]T, error) {
	var errs []error
	out := make([]T, 0, len(results))
	for _, r := range results {
		if !r.IsSuccess() {
			errs = append(errs, r.Err())
			continue
		}
		out = append(out, r.Value())
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func attempt(f any, x any) lambda.Result[any] {
	out, err := fn.Try(f, x)
	if err != nil {
		return lambda.Fail[any](err)
	}
	return lambda.Success(out)
}

func run[U any](ctx context.Context, n int, work func(ctx context.Context, i int) lambda.Result[U]) []lambda.Result[U] {
	out := make([]lambda.Result[U], n)
	failFast := core.IsFailFastEnabled(ctx, false)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(core.GetWorkerMaxCount(ctx, runtime.NumCPU()))

	for i := 0; i < n; i++ {
		i := i
		if gctx.Err() != nil {
			out[i] = cancelled[U](gctx)
			continue
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				out[i] = cancelled[U](gctx)
				return nil
			}

			res := protect(gctx, i, work)
			out[i] = res
			if failFast && res.IsFailure() && !res.IsCancel() {
				if ce := lambda.Debug("fail fast"); ce != nil {
					ce.Write(zap.Int("position", i), zap.Error(res.Err()))
				}
				return res.Err()
			}
			return nil
		})
	}

	_ = g.Wait()
	return out
}

// protect runs one position on a worker goroutine, where a panic could not
// be recovered by the caller, and turns it into a failure.
func protect[U any](ctx context.Context, i int, work func(ctx context.Context, i int) lambda.Result[U]) (res lambda.Result[U]) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := fmt.Errorf("%w: %v", ErrPanicked, r)
		if e, ok := r.(error); ok {
			err = fmt.Errorf("%w: %w", ErrPanicked, e)
		}
		res = lambda.Fail[U](err)
	}()
	return work(ctx, i)
}

func cancelled[U any](ctx context.Context) lambda.Result[U] {
	return lambda.Cancel[U](fmt.Errorf("%w: %w", lambda.ErrCancelled, context.Cause(ctx)))
}
