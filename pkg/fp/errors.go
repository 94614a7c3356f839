package fp

import (
	"errors"
	"fmt"
)

var (
	ErrNilValue = errors.New("nil value")
	ErrEmpty    = errors.New("empty value")
)

// PanicError carries a value recovered from a panicking transformation.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the recovered value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Catch runs fn and turns a panic raised inside it into a *PanicError.
func Catch[T, R any](fn func(T) (R, error), in T) (out R, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			out, err = zero, &PanicError{Value: r}
		}
	}()

	return fn(in)
}
