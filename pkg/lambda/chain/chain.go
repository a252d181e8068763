package chain

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ib-77/lambda/pkg/lambda"
	"github.com/ib-77/lambda/pkg/lambda/fn"
)

// Chain wraps a lambda.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result lambda.Result[T]
}

// Start creates a new chain from a lambda.Result
func Start[T any](ctx context.Context, result lambda.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, lambda.Success(value))
}

// Result returns the underlying lambda.Result
func (c *Chain[T]) Result() lambda.Result[T] {
	return c.result
}

// Then calls f with the current value. f may be any function; see fn.Try
// for how the value is passed and how failures are reported.
func Then[T any](c *Chain[T], f any) *Chain[any] {
	return step(c, func(ctx context.Context, v T) (out any, err error) {
		return fn.Try(f, v)
	})
}

// ThenAll runs every callable of fs in turn, as repeated Then.
func ThenAll(c *Chain[any], fs ...any) *Chain[any] {
	for _, f := range fs {
		c = Then(c, f)
	}
	return c
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return step(c, tryOnSuccess)
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return step(c, func(ctx context.Context, v T) (U, error) {
		return onSuccess(ctx, v), nil
	})
}

// Validate runs checks against the current value. With breakOnError the
// first failing check ends validation; otherwise every check runs and their
// errors are joined.
func (c *Chain[T]) Validate(breakOnError bool, checks ...func(context.Context, T) error) *Chain[T] {
	return step(c, func(ctx context.Context, v T) (T, error) {
		var err error
		for _, check := range checks {
			if e := check(ctx, v); e != nil {
				err = errors.Join(append(lambda.GetErrors(err), e)...)
				if breakOnError {
					break
				}
			}
		}
		return v, err
	})
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	if c.result.IsSuccess() {
		onSuccess(c.ctx, c.result.Value())
	}
	return c
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {

	switch {
	case c.result.IsSuccess():
		return onSuccess(c.ctx, c.result.Value())
	case c.result.IsCancel():
		return onCancel(c.ctx, c.result.Err())
	default:
		return onFailure(c.ctx, c.result.Err())
	}
}

func step[T, U any](c *Chain[T], f func(context.Context, T) (U, error)) *Chain[U] {
	if !c.result.IsSuccess() {
		return &Chain[U]{ctx: c.ctx, result: lambda.FailFrom[T, U](c.result)}
	}

	if err := c.ctx.Err(); err != nil {
		return &Chain[U]{ctx: c.ctx, result: lambda.Cancel[U](fmt.Errorf("%w: %w", lambda.ErrCancelled, err))}
	}

	out, err := guard(c.ctx, c.result.Value(), f)
	if err != nil {
		if ce := lambda.Debug("chain stage failed"); ce != nil {
			ce.Write(zap.String("stage_in", fmt.Sprintf("%T", c.result.Value())), zap.Error(err))
		}
		if lambda.IsCancellationError(err) {
			return &Chain[U]{ctx: c.ctx, result: lambda.Cancel[U](err)}
		}
		return &Chain[U]{ctx: c.ctx, result: lambda.Fail[U](err)}
	}

	return &Chain[U]{ctx: c.ctx, result: lambda.Success(out)}
}

func guard[T, U any](ctx context.Context, v T, f func(context.Context, T) (U, error)) (out U, err error) {
	defer lambda.Recover(&err)
	return f(ctx, v)
}
