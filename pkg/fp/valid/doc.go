// Package valid threads a value through fallible steps that produce an
// fp.Validation[E, T].
//
// A step is a plain function of the raw value:
// - Step/StepWith: transform the value; failure becomes Invalid(E)
// - Check/CheckWith: run a check; success keeps the original value
// - Observe: run a check, report failures, always stay Valid
//
// Calling a step never looks at an earlier Validation, so steps invoked one
// after another all run. Use fp.FlatMapValid or Chain to stop at the first
// Invalid, and All to collect the errors of several steps over one input.
package valid
