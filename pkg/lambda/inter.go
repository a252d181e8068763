package lambda

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the call failed
	Err() error
	// IsSuccess returns true if the call succeeded
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the call never ran because its context ended
	IsCancel() bool
}

var _ WithCancel[any] = Result[any]{}
