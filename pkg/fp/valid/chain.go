package valid

import (
	"github.com/ib-77/fpkit/pkg/fp"
	"github.com/ib-77/fpkit/pkg/fp/guard"
)

// Chain threads one value through steps of the same type and stops running
// them once the validation is Invalid.
type Chain[E, T any] struct {
	res fp.Validation[E, T]
}

func Start[E, T any](v fp.Validation[E, T]) Chain[E, T] {
	return Chain[E, T]{res: v}
}

func From[E, T any](seed T) Chain[E, T] {
	return Start(Init[E](seed))
}

func (c Chain[E, T]) Result() fp.Validation[E, T] {
	return c.res
}

// Then applies step to the current value when the chain is still Valid.
func (c Chain[E, T]) Then(step func(T) fp.Validation[E, T]) Chain[E, T] {
	return Chain[E, T]{res: fp.FlatMapValid(c.res, step)}
}

func (c Chain[E, T]) Check(check func(T) error, errValue E) Chain[E, T] {
	return c.Then(Check(check, errValue, nil))
}

func (c Chain[E, T]) Observe(check func(T) error, onFailure guard.OnFailure[T]) Chain[E, T] {
	return c.Then(Observe[E](check, onFailure))
}

// Or returns the first Valid chain among c and alternatives, or the first
// Invalid one when none is Valid.
func (c Chain[E, T]) Or(alternatives ...Chain[E, T]) Chain[E, T] {
	if c.res.IsValid() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsValid() {
			return alt
		}
	}
	return c
}

// And returns the first Invalid chain among c and required, or the last one
// when all are Valid.
func (c Chain[E, T]) And(required ...Chain[E, T]) Chain[E, T] {
	if c.res.IsInvalid() {
		return c
	}
	last := c
	for _, r := range required {
		if r.res.IsInvalid() {
			return r
		}
		last = r
	}
	return last
}

// Ensure triggers side effects for the current state without changing it.
func (c Chain[E, T]) Ensure(onValid func(T), onInvalid func(E)) Chain[E, T] {
	if v, ok := c.res.Get(); ok {
		if onValid != nil {
			onValid(v)
		}
		return c
	}

	if onInvalid != nil {
		e, _ := c.res.Error()
		onInvalid(e)
	}
	return c
}

// Finally collapses the chain to a value of the same type.
func (c Chain[E, T]) Finally(onValid func(T) T, onInvalid func(E) T) T {
	return fp.Fold(c.res, onValid, onInvalid)
}

// Next moves the chain to a new value type through step.
func Next[E, T, R any](c Chain[E, T], step func(T) fp.Validation[E, R]) Chain[E, R] {
	return Chain[E, R]{res: fp.FlatMapValid(c.res, step)}
}

// Collapse is Finally for a result of another type.
func Collapse[E, T, R any](c Chain[E, T], onValid func(T) R, onInvalid func(E) R) R {
	return fp.Fold(c.res, onValid, onInvalid)
}
