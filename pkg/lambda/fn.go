package lambda

// Fn is the uniform shape of every callable produced by the dynamic
// combinators. Invoking an accumulating Fn returns the next Fn; invoking a
// saturated one returns the underlying function's result.
type Fn func(args ...any) any

// Bind invokes f with args and returns the Fn the call produced.
// It panics with ErrArityMismatch when the call saturated f instead.
func (f Fn) Bind(args ...any) Fn {
	next := f(args...)
	switch next := next.(type) {
	case Fn:
		return next
	case func(...any) any:
		return next
	}
	Raise("%w: call with %d argument(s) produced %T, not a callable", ErrArityMismatch, len(args), next)
	return nil
}
