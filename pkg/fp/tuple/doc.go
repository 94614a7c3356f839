// Package tuple bundles two or three independently derived values.
//
// Safe bundles (Safe2, Safe3) hold an fp.Option per slot. Absence or failure
// in one slot never affects the others; Merge2/Merge3 combine the slots only
// when AllPresent holds. Unsafe bundles (Tuple2, Tuple3) hold raw values and
// let panics from mapping functions propagate.
//
// Slot functions must not depend on each other or on shared mutable state:
// the order in which the slots of one bundle are evaluated is unspecified.
// Larger bundles are built by nesting.
package tuple
