package valid

import (
	"github.com/ib-77/fpkit/pkg/fp"
)

// All applies every step to the same input and collects the errors of the
// Invalid ones in order. With breakOnInvalid it stops at the first Invalid.
// The result is Valid(input) when no step failed.
func All[E, T any](input T, breakOnInvalid bool, steps ...func(T) fp.Validation[E, T]) fp.Validation[[]E, T] {
	var errs []E

	for _, step := range steps {
		e, invalid := step(input).Error()
		if !invalid {
			continue
		}

		errs = append(errs, e)
		if breakOnInvalid {
			break
		}
	}

	if len(errs) > 0 {
		return fp.Invalid[[]E, T](errs)
	}
	return fp.Valid[[]E](input)
}
