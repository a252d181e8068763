// Package fn implements the dynamic combinators: currying driven by a
// function's declared arity, placeholder-based partial application,
// argument-order flips, composition and arity restriction.
//
// Every combinator accepts any Go function value and returns a lambda.Fn.
// Arguments are converted to the wrapped function's parameter types when it
// is finally called (see core.Call).
//
// Highlights:
// - NCurry/Curry: accumulate arguments across calls until the arity is met
// - Partial: fix arguments ahead of time, leaving lambda.Placeholder holes
// - Flip/Flip3/NFlip: reverse the order arguments are supplied in
// - Compose/Sequence: right-to-left and left-to-right pipelines
// - PCompose/Over: per-position application, combine after transforming
// - Unary/Binary/Nary: forward only the first n arguments
// - Try: call a dynamic function and get its failure back as an error
//
// Accumulated argument lists are never shared between calls, so a curried or
// partially applied Fn may be reused from any number of call sites and
// goroutines.
package fn
