// Package lambda holds the shared vocabulary of the combinator toolkit:
// the dynamic callable shape Fn, the Placeholder marker used by partial
// application, the error kinds raised by the engine and the Result[T] type
// that records the outcome of a guarded call.
//
// The combinators themselves live in sub-packages:
// - core: arity inspection and reflective invocation
// - fn: dynamic currying, partial application, flips and composition
// - typed: statically typed generic counterparts of fn
// - seq, deep, text: sequence, record and string helpers
// - chain: fluent error-capturing pipelines over Fn stages
// - mass: per-position application with bounded concurrency
package lambda
