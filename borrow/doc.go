// Package borrow provides small helpers for controlled mutation and aliasing:
// single-slot cells that permit mutation through a shared binding, a
// runtime-checked shared/exclusive borrow cell with scoped views, and a field
// splitter for handing out independent pointers into disjoint fields of one
// parent value.
//
// Everything in this package is single-threaded by design. None of these types
// provide cross-goroutine synchronization; callers that share them across
// goroutines must supply their own locking. The runtime-checked [Ref] exists
// to catch caller bugs (overlapping exclusive access), not to serialize
// concurrent access - it is explicitly not a mutex substitute.
//
// Contract violations (conflicting borrows, use of a released view) are
// programming errors and panic immediately rather than returning an error,
// since no caller-side recovery is meaningful for a bug in the same caller.
package borrow
