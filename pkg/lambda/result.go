package lambda

import (
	"time"

	"github.com/google/uuid"
)

// Result records the outcome of a guarded call.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries a non-successful result over to another value type,
// keeping its identity.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports whether r is the zero Result.
func (r Result[T]) IsEmpty() bool {
	return r.id == uuid.Nil
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Get returns the value and the error, in Go's usual order.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}
