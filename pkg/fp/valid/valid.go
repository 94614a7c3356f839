package valid

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/guard"
)

// Init starts a pipeline for the given error type.
func Init[E, T any](seed T) fp.Validation[E, T] {
	return fp.Valid[E](seed)
}

// Step applies fn. On failure onFailure receives the input and the real
// error, and the result is Invalid(errValue).
func Step[E, T, R any](fn func(T) (R, error), errValue E, onFailure guard.OnFailure[T]) func(T) fp.Validation[E, R] {
	return StepWith(fn, func(error) E { return errValue }, onFailure)
}

// StepWith is Step with the Invalid error built from the caught error.
func StepWith[E, T, R any](fn func(T) (R, error), toErr func(error) E,
	onFailure guard.OnFailure[T]) func(T) fp.Validation[E, R] {
	return func(in T) fp.Validation[E, R] {
		out, err := fp.Catch(fn, in)
		if err != nil {
			if onFailure != nil {
				onFailure(in, err)
			}
			return fp.Invalid[E, R](toErr(err))
		}
		return fp.Valid[E](out)
	}
}

// Check runs check for its side effect only; on success the input itself is
// carried forward.
func Check[E, T any](check func(T) error, errValue E, onFailure guard.OnFailure[T]) func(T) fp.Validation[E, T] {
	return CheckWith(check, func(error) E { return errValue }, onFailure)
}

func CheckWith[E, T any](check func(T) error, toErr func(error) E,
	onFailure guard.OnFailure[T]) func(T) fp.Validation[E, T] {
	return StepWith(passThrough(check), toErr, onFailure)
}

// Observe reports a failing check through onFailure but never blocks: the
// result is always Valid(input).
func Observe[E, T any](check func(T) error, onFailure guard.OnFailure[T]) func(T) fp.Validation[E, T] {
	return func(in T) fp.Validation[E, T] {
		if _, err := fp.Catch(passThrough(check), in); err != nil && onFailure != nil {
			onFailure(in, err)
		}
		return fp.Valid[E](in)
	}
}

func passThrough[T any](check func(T) error) func(T) (T, error) {
	return func(in T) (T, error) {
		if err := check(in); err != nil {
			return in, err
		}
		return in, nil
	}
}
