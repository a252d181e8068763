// Package core contains the reflective plumbing the combinators stand on:
// arity inspection, argument conversion, invocation of arbitrary Go
// functions from dynamic argument lists, adaptation of dynamic callables to
// concrete func types, and the context-carried options read by package mass.
// It defines no combinators itself.
package core
