// Package fn holds small function combinators: partial application,
// composition and predicate helpers.
package fn

import (
	"github.com/ib-77/fpkit/pkg/fp"
)

// Curry fixes the first argument of f.
func Curry[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// CurryRight fixes the second argument of f.
func CurryRight[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R { return f(a, b) }
}

func CurryConsumer[A, B any](f func(A, B), a A) func(B) {
	return func(b B) { f(a, b) }
}

func CurryConsumerRight[A, B any](f func(A, B), b B) func(A) {
	return func(a A) { f(a, b) }
}

// Apply fixes the first argument of a three-argument function.
func Apply[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R { return f(a, b, c) }
}

func AndThen[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

func AndThen3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D { return h(g(f(a))) }
}

// Compose is AndThen with the arguments reversed: Compose(f, g)(a) == f(g(a)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return AndThen(g, f)
}

func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// ToPredicate turns a fallible test into a predicate that is false whenever
// the test fails or panics.
func ToPredicate[T any](test func(T) (bool, error)) func(T) bool {
	return func(v T) bool {
		ok, err := fp.Catch(test, v)
		return err == nil && ok
	}
}

// Combine maps each argument through its own function and merges the results.
// A nil merged value yields None.
func Combine[A, B, RA, RB, R any](fa func(A) RA, fb func(B) RB, merge func(RA, RB) R) func(A, B) fp.Option[R] {
	return func(a A, b B) fp.Option[R] {
		return fp.OfNillable(merge(fa(a), fb(b)))
	}
}

// Ap applies an optional function; None or a nil result yields None.
func Ap[T, R any](f fp.Option[func(T) R]) func(T) fp.Option[R] {
	return func(v T) fp.Option[R] {
		return fp.FlatMap(f, func(g func(T) R) fp.Option[R] {
			return fp.OfNillable(g(v))
		})
	}
}

// Discard drops the result of f.
func Discard[T, R any](f func(T) R) func(T) {
	return func(v T) { f(v) }
}

func Identity[T any](v T) T {
	return v
}
