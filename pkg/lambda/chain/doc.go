// Package chain provides a fluent wrapper around lambda.Result[T] for
// running a value through a sequence of stages, where the first failure
// short-circuits the rest.
//
// Stages are either typed Go functions or dynamic callables built with
// package fn. A dynamic stage that panics with an error (an arity mismatch,
// a bad argument, an error returned by the callee) turns the chain into a
// failure instead of unwinding the caller.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: run a dynamic callable on the value
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Validate: run checks, joining their errors
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// A stage never starts once the chain's context is done; the chain becomes
// a cancel result instead.
package chain
