package fp

// Validation is either Valid with a value or Invalid with an error of type E.
type Validation[E, T any] struct {
	value   T
	err     E
	isValid bool
}

func Valid[E, T any](v T) Validation[E, T] {
	return Validation[E, T]{
		value:   v,
		isValid: true,
	}
}

func Invalid[E, T any](e E) Validation[E, T] {
	return Validation[E, T]{
		err:     e,
		isValid: false,
	}
}

// InvalidFrom re-types an Invalid validation. Valid input yields an Invalid
// holding the zero E, so callers check the tag first.
func InvalidFrom[E, In, Out any](from Validation[E, In]) Validation[E, Out] {
	return Validation[E, Out]{
		err:     from.err,
		isValid: false,
	}
}

func (v Validation[E, T]) IsValid() bool {
	return v.isValid
}

func (v Validation[E, T]) IsInvalid() bool {
	return !v.isValid
}

// Get returns the value and whether v is Valid.
func (v Validation[E, T]) Get() (T, bool) {
	return v.value, v.isValid
}

// Error returns the error and whether v is Invalid.
func (v Validation[E, T]) Error() (E, bool) {
	return v.err, !v.isValid
}

func (v Validation[E, T]) OrElse(other T) T {
	if v.isValid {
		return v.value
	}
	return other
}

func (v Validation[E, T]) ToOption() Option[T] {
	if v.isValid {
		return Some(v.value)
	}
	return None[T]()
}

func MapValid[E, T, R any](v Validation[E, T], fn func(T) R) Validation[E, R] {
	if !v.isValid {
		return InvalidFrom[E, T, R](v)
	}
	return Valid[E](fn(v.value))
}

func MapInvalid[E, F, T any](v Validation[E, T], fn func(E) F) Validation[F, T] {
	if v.isValid {
		return Valid[F](v.value)
	}
	return Invalid[F, T](fn(v.err))
}

// FlatMapValid runs next only when v is Valid; an Invalid v is returned as is.
func FlatMapValid[E, T, R any](v Validation[E, T], next func(T) Validation[E, R]) Validation[E, R] {
	if !v.isValid {
		return InvalidFrom[E, T, R](v)
	}
	return next(v.value)
}

func Fold[E, T, R any](v Validation[E, T], onValid func(T) R, onInvalid func(E) R) R {
	if v.isValid {
		return onValid(v.value)
	}
	return onInvalid(v.err)
}
