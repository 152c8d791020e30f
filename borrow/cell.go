package borrow

// Cell is a single-slot container whose value can be read and replaced
// through a shared binding. Values are always copied in and out, so no
// aliasing hazard exists, but the copies are shallow: T should have value
// semantics (no shared pointers, slices, or maps that callers mutate).
//
// Cell is not safe for concurrent use. Within one goroutine, Get observes
// the value of the most recent Set.
type Cell[T any] struct {
	v T
}

// New creates a Cell holding initial.
func New[T any](initial T) *Cell[T] {
	return &Cell[T]{v: initial}
}

// Get returns the current value by copy.
func (c *Cell[T]) Get() T {
	return c.v
}

// Set replaces the value. The new value is visible to the next Get.
func (c *Cell[T]) Set(v T) {
	c.v = v
}

// Swap replaces the value and returns the previous one.
func (c *Cell[T]) Swap(v T) T {
	old := c.v
	c.v = v
	return old
}

// Update replaces the value with f applied to the current value.
// f must not call back into the same Cell.
func (c *Cell[T]) Update(f func(T) T) {
	c.v = f(c.v)
}

// Take moves the value out of *p, leaving the zero value in its place.
func Take[T any](p *T) T {
	var zero T
	old := *p
	*p = zero
	return old
}

// Replace stores v in *p and returns the previous value.
func Replace[T any](p *T, v T) T {
	old := *p
	*p = v
	return old
}

// Update replaces *p with f applied to the current value.
func Update[T any](p *T, f func(T) T) {
	*p = f(*p)
}
