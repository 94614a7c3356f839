package fp

// Option holds either a present value or nothing.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OfNillable returns None when v is nil (see IsNil) and Some(v) otherwise.
// Zero values of non-nillable types are present.
func OfNillable[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// OfPointer dereferences p, returning None for a nil pointer.
func OfPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the value or panics with ErrEmpty.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic(ErrEmpty)
	}
	return o.value
}

func (o Option[T]) OrElse(v T) T {
	if o.present {
		return o.value
	}
	return v
}

func (o Option[T]) OrElseGet(supply func() T) T {
	if o.present {
		return o.value
	}
	return supply()
}

func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.present && keep(o.value) {
		return o
	}
	return None[T]()
}

// Peek calls fn with the value if present and returns o unchanged.
func (o Option[T]) Peek(fn func(T)) Option[T] {
	if o.present {
		fn(o.value)
	}
	return o
}

func Map[T, R any](o Option[T], fn func(T) R) Option[R] {
	if !o.present {
		return None[R]()
	}
	return Some(fn(o.value))
}

func FlatMap[T, R any](o Option[T], fn func(T) Option[R]) Option[R] {
	if !o.present {
		return None[R]()
	}
	return fn(o.value)
}

// TryMap applies a fallible fn to a present value. An error, a panic or a
// nil result all yield None.
func TryMap[T, R any](o Option[T], fn func(T) (R, error)) Option[R] {
	if !o.present {
		return None[R]()
	}

	r, err := Catch(fn, o.value)
	if err != nil {
		return None[R]()
	}
	return OfNillable(r)
}
