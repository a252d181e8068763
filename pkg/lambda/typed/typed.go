// Package typed provides the combinators of package fn for code that knows
// its types at compile time. Nothing here uses reflection: arity is fixed by
// the function's name (Curry2, Curry3, ...) instead of being inspected.
package typed

import "github.com/samber/mo"

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Curry2 converts a binary function into its curried form.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 converts a ternary function into its curried form.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Partial1 fixes the first argument of f.
func Partial1[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Partial2 fixes the second argument of f, leaving the first open.
func Partial2[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R {
		return f(a, b)
	}
}

// PartialMiddle fixes the middle argument of a ternary f; the outer two are
// supplied in order at call time.
func PartialMiddle[A, B, C, R any](f func(A, B, C) R, b B) func(A, C) R {
	return func(a A, c C) R {
		return f(a, b, c)
	}
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// Flip3 reverses the arguments of a ternary function.
func Flip3[A, B, C, R any](f func(A, B, C) R) func(C, B, A) R {
	return func(c C, b B, a A) R {
		return f(a, b, c)
	}
}

// Unary adapts f to the (item, index) iteratee shape used by slice helpers,
// discarding the index.
func Unary[A, R any](f func(A) R) func(A, int) R {
	return func(a A, _ int) R {
		return f(a)
	}
}

// Compose composes functions in right-to-left order.
func Compose[T any](fs ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fs) - 1; i >= 0; i-- {
			v = fs[i](v)
		}
		return v
	}
}

// Sequence composes functions in left-to-right order.
func Sequence[T any](fs ...func(T) T) func(T) T {
	return func(v T) T {
		for _, f := range fs {
			v = f(v)
		}
		return v
	}
}

// Pipe applies fs to v left to right.
func Pipe[T any](v T, fs ...func(T) T) T {
	return Sequence(fs...)(v)
}

// Compose2 is f after g: Compose2(f, g)(x) == f(g(x)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 is f after g after h.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, h func(A) B) func(A) D {
	return func(a A) D {
		return f(g(h(a)))
	}
}

// Sequence2 is left to right composition: Sequence2(f, g)(x) == g(f(x)).
func Sequence2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return Compose2(g, f)
}

// Over combines two operands with f after transforming both with g.
func Over[A, B, R any](f func(B, B) R, g func(A) B) func(A, A) R {
	return func(x, y A) R {
		return f(g(x), g(y))
	}
}

// PCompose applies fs position by position; positions without a function,
// or with a nil one, yield mo.None.
func PCompose[A, B any](fs ...func(A) B) func([]A) []mo.Option[B] {
	return func(xs []A) []mo.Option[B] {
		out := make([]mo.Option[B], len(xs))
		for i, x := range xs {
			if i < len(fs) && fs[i] != nil {
				out[i] = mo.Some(fs[i](x))
			} else {
				out[i] = mo.None[B]()
			}
		}
		return out
	}
}
