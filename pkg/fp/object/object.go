// Package object provides property helpers that plug into fp pipelines.
package object

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/ib-77/fpkit/pkg/fp"
)

// CopyFn returns a function that copies matching fields of a source value
// into a new R.
func CopyFn[S, R any]() func(S) (R, error) {
	return func(src S) (R, error) {
		var dst R
		if fp.IsNil(src) {
			return dst, fp.ErrNilValue
		}
		if err := copier.Copy(&dst, src); err != nil {
			return dst, fmt.Errorf("copy %T into %T: %w", src, dst, err)
		}
		return dst, nil
	}
}

// SetProp returns a function that calls set(target, value) and hands the
// target back. A nil value is skipped.
func SetProp[T, U any](set func(T, U), value U) func(T) T {
	return SetPropOpt(set, fp.OfNillable(value))
}

func SetPropOpt[T, U any](set func(T, U), value fp.Option[U]) func(T) T {
	return func(target T) T {
		value.Peek(func(v U) { set(target, v) })
		return target
	}
}

// SetOn binds the target so values can be fed to it one by one.
func SetOn[T, U any](target T, set func(T, U)) func(U) {
	return func(v U) { set(target, v) }
}

// GetProp reads a property of a possibly nil object. A nil object or a nil
// property yields None.
func GetProp[T, U any](obj T, get func(T) U) fp.Option[U] {
	return fp.FlatMap(fp.OfNillable(obj), func(o T) fp.Option[U] {
		return fp.OfNillable(get(o))
	})
}

func EqualsTo[T comparable](want T) func(T) bool {
	return func(v T) bool { return v == want }
}

// EqualsBy compares want with the property of a possibly nil value.
func EqualsBy[T any, R comparable](want R, get func(T) R) func(T) bool {
	return func(v T) bool {
		got, ok := GetProp(v, get).Get()
		return ok && got == want
	}
}

// Check evaluates pred and calls onReject with values that do not pass.
func Check[T any](pred func(T) bool, onReject func(T)) func(T) bool {
	return func(v T) bool {
		if pred(v) {
			return true
		}
		if onReject != nil {
			onReject(v)
		}
		return false
	}
}
