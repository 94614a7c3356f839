package tuple

import (
	"github.com/ib-77/fpkit/pkg/fp"
)

// Tuple2 is a raw pair with no absence tracking.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func ToUnsafe2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{First: a, Second: b}
}

func ToUnsafe3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{First: a, Second: b, Third: c}
}

func (t Tuple2[A, B]) Values() (A, B) {
	return t.First, t.Second
}

func (t Tuple3[A, B, C]) Values() (A, B, C) {
	return t.First, t.Second, t.Third
}

func SplitUnsafe2[T, A, B any](fa func(T) A, fb func(T) B) func(T) Tuple2[A, B] {
	return func(in T) Tuple2[A, B] {
		return ToUnsafe2(fa(in), fb(in))
	}
}

func SplitUnsafe3[T, A, B, C any](fa func(T) A, fb func(T) B, fc func(T) C) func(T) Tuple3[A, B, C] {
	return func(in T) Tuple3[A, B, C] {
		return ToUnsafe3(fa(in), fb(in), fc(in))
	}
}

func MapUnsafe2[A, B, RA, RB any](t Tuple2[A, B], fa func(A) RA, fb func(B) RB) Tuple2[RA, RB] {
	return ToUnsafe2(fa(t.First), fb(t.Second))
}

func MapUnsafe3[A, B, C, RA, RB, RC any](t Tuple3[A, B, C], fa func(A) RA, fb func(B) RB,
	fc func(C) RC) Tuple3[RA, RB, RC] {
	return ToUnsafe3(fa(t.First), fb(t.Second), fc(t.Third))
}

func MergeUnsafe2[A, B, R any](t Tuple2[A, B], fn func(A, B) R) R {
	return fn(t.First, t.Second)
}

func MergeUnsafe3[A, B, C, R any](t Tuple3[A, B, C], fn func(A, B, C) R) R {
	return fn(t.First, t.Second, t.Third)
}

// Lift2 moves a raw pair into a Safe2, treating nil slots as absent.
func Lift2[A, B any](t Tuple2[A, B]) Safe2[A, B] {
	return ToSafe2(t.First, t.Second)
}

func Lift3[A, B, C any](t Tuple3[A, B, C]) Safe3[A, B, C] {
	return ToSafe3(t.First, t.Second, t.Third)
}

// LiftMap2 maps a raw pair slot by slot into a Safe2; nil inputs, failures
// and nil outputs empty only their own slot.
func LiftMap2[A, B, RA, RB any](t Tuple2[A, B], fa func(A) (RA, error), fb func(B) (RB, error)) Safe2[RA, RB] {
	return Of2(fp.TryMap(fp.OfNillable(t.First), fa), fp.TryMap(fp.OfNillable(t.Second), fb))
}
