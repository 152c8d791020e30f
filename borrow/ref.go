package borrow

// Ref wraps a value of any type and enforces a reader/writer borrow
// discipline at runtime: at most one exclusive view, or any number of shared
// views, may be outstanding at a time. A conflicting request panics at the
// moment it is made.
//
// This is a single-threaded borrow check, useful when static aliasing rules
// are too restrictive (e.g., simulating self-referential structures). It
// provides no cross-goroutine safety whatsoever.
type Ref[T any] struct {
	v T

	// borrows is 0 when free, -1 while an exclusive view is outstanding,
	// and the reader count while shared views are outstanding.
	borrows int
}

// NewRef creates a Ref holding initial.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{v: initial}
}

// Borrow returns a shared scoped view of the value. It panics if an
// exclusive view is currently outstanding. The caller must Release the
// view when done with it.
func (r *Ref[T]) Borrow() *View[T] {
	if r.borrows < 0 {
		panic("borrow: already exclusively borrowed")
	}
	r.borrows++
	return &View[T]{ref: r}
}

// BorrowMut returns an exclusive scoped view of the value. It panics if any
// view, shared or exclusive, is currently outstanding. The caller must
// Release the view when done with it.
func (r *Ref[T]) BorrowMut() *MutView[T] {
	if r.borrows != 0 {
		panic("borrow: already borrowed")
	}
	r.borrows = -1
	return &MutView[T]{ref: r}
}

// View is a shared, read-only view of a Ref's value. It is dead after
// Release; any further use panics.
type View[T any] struct {
	ref *Ref[T]
}

// Value returns the current value by copy.
func (v *View[T]) Value() T {
	if v.ref == nil {
		panic("borrow: use of released view")
	}
	return v.ref.v
}

// Release ends the borrow. Releasing a view twice panics.
func (v *View[T]) Release() {
	if v.ref == nil {
		panic("borrow: view released twice")
	}
	v.ref.borrows--
	v.ref = nil
}

// MutView is an exclusive, mutable view of a Ref's value. It is dead after
// Release; any further use panics.
type MutView[T any] struct {
	ref *Ref[T]
}

// Value returns a pointer to the contained value. The pointer must not be
// retained past Release.
func (v *MutView[T]) Value() *T {
	if v.ref == nil {
		panic("borrow: use of released view")
	}
	return &v.ref.v
}

// Release ends the borrow. Releasing a view twice panics.
func (v *MutView[T]) Release() {
	if v.ref == nil {
		panic("borrow: view released twice")
	}
	v.ref.borrows = 0
	v.ref = nil
}

// With acquires a shared view for the duration of f only and returns f's
// result. The view is released even if f panics. f receives the value by
// copy and must not mutate reachable shared state.
func With[T, R any](r *Ref[T], f func(T) R) R {
	v := r.Borrow()
	defer v.Release()
	return f(v.ref.v)
}

// WithMut acquires an exclusive view for the duration of f only and returns
// f's result. The view is released even if f panics. The pointer passed to
// f must not be retained after f returns.
func WithMut[T, R any](r *Ref[T], f func(*T) R) R {
	v := r.BorrowMut()
	defer v.Release()
	return f(&v.ref.v)
}

// WithClone replaces the contained value with clone applied to the current
// value, then runs f with exclusive access to the fresh copy. Useful for
// types without implicit copies when the previous value must not be mutated
// in place.
func WithClone[T, R any](r *Ref[T], clone func(T) T, f func(*T) R) R {
	v := r.BorrowMut()
	defer v.Release()
	v.ref.v = clone(v.ref.v)
	return f(&v.ref.v)
}
