// Package guard turns fallible single-argument functions into total ones.
//
// A wrapped function has the shape func(T) (R, error). It fails when it
// returns a non-nil error or panics; panics are recovered as *fp.PanicError.
//
// - Try/Lift: failure becomes fp.None, reported once through OnFailure
// - TryOr: failure becomes a default value
// - Translate/TranslateWith: failure is returned as a different error
// - MustTranslate: failure is raised as a panic carrying the translated error
// - TryList/TryNonEmptyList: list results, with nil and failure normalized
//
// Callbacks and error mappers are not guarded; a panic inside them reaches
// the caller.
package guard
