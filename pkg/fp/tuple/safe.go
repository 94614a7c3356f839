package tuple

import (
	"github.com/ib-77/fpkit/pkg/fp"
)

type Safe2[A, B any] struct {
	first  fp.Option[A]
	second fp.Option[B]
}

type Safe3[A, B, C any] struct {
	first  fp.Option[A]
	second fp.Option[B]
	third  fp.Option[C]
}

func Of2[A, B any](a fp.Option[A], b fp.Option[B]) Safe2[A, B] {
	return Safe2[A, B]{first: a, second: b}
}

func Of3[A, B, C any](a fp.Option[A], b fp.Option[B], c fp.Option[C]) Safe3[A, B, C] {
	return Safe3[A, B, C]{first: a, second: b, third: c}
}

// ToSafe2 wraps raw values; only nil values (see fp.IsNil) are absent.
func ToSafe2[A, B any](a A, b B) Safe2[A, B] {
	return Of2(fp.OfNillable(a), fp.OfNillable(b))
}

func ToSafe3[A, B, C any](a A, b B, c C) Safe3[A, B, C] {
	return Of3(fp.OfNillable(a), fp.OfNillable(b), fp.OfNillable(c))
}

func (t Safe2[A, B]) First() fp.Option[A]  { return t.first }
func (t Safe2[A, B]) Second() fp.Option[B] { return t.second }

func (t Safe2[A, B]) Values() (fp.Option[A], fp.Option[B]) {
	return t.first, t.second
}

func (t Safe2[A, B]) AllPresent() bool {
	return t.first.IsSome() && t.second.IsSome()
}

// Unwrap returns the raw bundle when every slot is present.
func (t Safe2[A, B]) Unwrap() (Tuple2[A, B], bool) {
	a, okA := t.first.Get()
	b, okB := t.second.Get()
	if !okA || !okB {
		return Tuple2[A, B]{}, false
	}
	return ToUnsafe2(a, b), true
}

func (t Safe3[A, B, C]) First() fp.Option[A]  { return t.first }
func (t Safe3[A, B, C]) Second() fp.Option[B] { return t.second }
func (t Safe3[A, B, C]) Third() fp.Option[C]  { return t.third }

func (t Safe3[A, B, C]) Values() (fp.Option[A], fp.Option[B], fp.Option[C]) {
	return t.first, t.second, t.third
}

func (t Safe3[A, B, C]) AllPresent() bool {
	return t.first.IsSome() && t.second.IsSome() && t.third.IsSome()
}

func (t Safe3[A, B, C]) Unwrap() (Tuple3[A, B, C], bool) {
	a, okA := t.first.Get()
	b, okB := t.second.Get()
	c, okC := t.third.Get()
	if !okA || !okB || !okC {
		return Tuple3[A, B, C]{}, false
	}
	return ToUnsafe3(a, b, c), true
}

// Split2 applies each extractor to the same source. An error, a panic or a
// nil result empties only the slot it came from.
func Split2[T, A, B any](fa func(T) (A, error), fb func(T) (B, error)) func(T) Safe2[A, B] {
	return func(in T) Safe2[A, B] {
		src := fp.Some(in)
		return Of2(fp.TryMap(src, fa), fp.TryMap(src, fb))
	}
}

func Split3[T, A, B, C any](fa func(T) (A, error), fb func(T) (B, error),
	fc func(T) (C, error)) func(T) Safe3[A, B, C] {
	return func(in T) Safe3[A, B, C] {
		src := fp.Some(in)
		return Of3(fp.TryMap(src, fa), fp.TryMap(src, fb), fp.TryMap(src, fc))
	}
}

// Bundle2 is Split2 for extractors that already return an fp.Option, such as
// functions wrapped with guard.Try.
func Bundle2[T, A, B any](fa func(T) fp.Option[A], fb func(T) fp.Option[B]) func(T) Safe2[A, B] {
	return func(in T) Safe2[A, B] {
		return Of2(fa(in), fb(in))
	}
}

func Bundle3[T, A, B, C any](fa func(T) fp.Option[A], fb func(T) fp.Option[B],
	fc func(T) fp.Option[C]) func(T) Safe3[A, B, C] {
	return func(in T) Safe3[A, B, C] {
		return Of3(fa(in), fb(in), fc(in))
	}
}

// Map2 maps each slot through its own function. Empty slots stay empty and
// a failing function empties only its slot.
func Map2[A, B, RA, RB any](t Safe2[A, B], fa func(A) (RA, error), fb func(B) (RB, error)) Safe2[RA, RB] {
	return Of2(fp.TryMap(t.first, fa), fp.TryMap(t.second, fb))
}

func Map3[A, B, C, RA, RB, RC any](t Safe3[A, B, C], fa func(A) (RA, error), fb func(B) (RB, error),
	fc func(C) (RC, error)) Safe3[RA, RB, RC] {
	return Of3(fp.TryMap(t.first, fa), fp.TryMap(t.second, fb), fp.TryMap(t.third, fc))
}

// Merge2 returns Some(fn(a, b)) when both slots are present and None
// otherwise. fn is not called for an incomplete bundle. A panic in fn or a
// nil result also yields None; MergeUnsafe2 lets the panic through.
func Merge2[A, B, R any](t Safe2[A, B], fn func(A, B) R) fp.Option[R] {
	return TryMerge2(t, func(a A, b B) (R, error) {
		return fn(a, b), nil
	})
}

func Merge3[A, B, C, R any](t Safe3[A, B, C], fn func(A, B, C) R) fp.Option[R] {
	return TryMerge3(t, func(a A, b B, c C) (R, error) {
		return fn(a, b, c), nil
	})
}

// TryMerge2 is Merge2 for a fallible combiner; a returned error also yields
// None.
func TryMerge2[A, B, R any](t Safe2[A, B], fn func(A, B) (R, error)) fp.Option[R] {
	raw, ok := t.Unwrap()
	if !ok {
		return fp.None[R]()
	}
	return fp.TryMap(fp.Some(raw), func(p Tuple2[A, B]) (R, error) {
		return fn(p.First, p.Second)
	})
}

func TryMerge3[A, B, C, R any](t Safe3[A, B, C], fn func(A, B, C) (R, error)) fp.Option[R] {
	raw, ok := t.Unwrap()
	if !ok {
		return fp.None[R]()
	}
	return fp.TryMap(fp.Some(raw), func(p Tuple3[A, B, C]) (R, error) {
		return fn(p.First, p.Second, p.Third)
	})
}
