package guard

import (
	"github.com/ib-77/fpkit/pkg/fp"
)

// OnFailure receives the original input and the error a wrapped function
// failed with.
type OnFailure[T any] func(in T, err error)

func (cb OnFailure[T]) report(in T, err error) {
	if cb != nil {
		cb(in, err)
	}
}

func Try[T, R any](fn func(T) (R, error), onFailure OnFailure[T]) func(T) fp.Option[R] {
	return func(in T) fp.Option[R] {
		out, err := fp.Catch(fn, in)
		if err != nil {
			onFailure.report(in, err)
			return fp.None[R]()
		}
		return fp.Some(out)
	}
}

func Lift[T, R any](fn func(T) (R, error)) func(T) fp.Option[R] {
	return Try(fn, nil)
}

// TryOr returns def whenever fn fails.
func TryOr[T, R any](fn func(T) (R, error), def R, onFailure OnFailure[T]) func(T) R {
	return func(in T) R {
		out, err := fp.Catch(fn, in)
		if err != nil {
			onFailure.report(in, err)
			return def
		}
		return out
	}
}

// Translate replaces any failure of fn with err. The caught error is not
// wrapped.
func Translate[T, R any](fn func(T) (R, error), err error) func(T) (fp.Option[R], error) {
	return TranslateWith(fn, func(error) error { return err })
}

func TranslateWith[T, R any](fn func(T) (R, error), translate func(error) error) func(T) (fp.Option[R], error) {
	return func(in T) (fp.Option[R], error) {
		out, err := fp.Catch(fn, in)
		if err != nil {
			return fp.None[R](), translate(err)
		}
		return fp.Some(out), nil
	}
}

// MustTranslate panics with translate(err) when fn fails, so it only returns
// on success.
func MustTranslate[T, R any](fn func(T) (R, error), translate func(error) error) func(T) fp.Option[R] {
	return func(in T) fp.Option[R] {
		out, err := fp.Catch(fn, in)
		if err != nil {
			panic(translate(err))
		}
		return fp.Some(out)
	}
}

// TryList never yields None: a nil result or a failure becomes an empty,
// non-nil slice.
func TryList[T, R any](fn func(T) ([]R, error), onFailure OnFailure[T]) func(T) fp.Option[[]R] {
	return func(in T) fp.Option[[]R] {
		out, err := fp.Catch(fn, in)
		if err != nil {
			onFailure.report(in, err)
			return fp.Some([]R{})
		}
		if out == nil {
			return fp.Some([]R{})
		}
		return fp.Some(out)
	}
}

// TryNonEmptyList yields None for a failure, a nil or an empty result.
func TryNonEmptyList[T, R any](fn func(T) ([]R, error), onFailure OnFailure[T]) func(T) fp.Option[[]R] {
	return func(in T) fp.Option[[]R] {
		out, err := fp.Catch(fn, in)
		if err != nil {
			onFailure.report(in, err)
			return fp.None[[]R]()
		}
		if len(out) == 0 {
			return fp.None[[]R]()
		}
		return fp.Some(out)
	}
}
