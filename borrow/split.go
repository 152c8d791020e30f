package borrow

// Splitter holds one exclusive reference to a parent value and hands out
// pointers into its fields via caller-supplied projections.
//
// Precondition: pointers obtained from Field calls and held simultaneously
// must target non-overlapping fields of the parent. The splitter cannot
// verify disjointness; use Overlaps in tests to check suspicious pairs.
type Splitter[T any] struct {
	parent *T
}

// NewSplitter creates a Splitter over parent. The caller must not use parent
// through other paths while pointers obtained from the splitter are live.
func NewSplitter[T any](parent *T) *Splitter[T] {
	return &Splitter[T]{parent: parent}
}

// Field applies proj to the splitter's parent and returns the projected
// field pointer. See the Splitter disjointness precondition.
//
// Field is a free function because Go methods cannot introduce the field
// type parameter U.
func Field[T, U any](s *Splitter[T], proj func(*T) *U) *U {
	return proj(s.parent)
}

// Overlaps reports whether two projected pointers alias the same field.
// It compares pointer identity only; it does not detect partial overlap of
// differently-typed projections. Intended for tests.
func Overlaps[U any](a, b *U) bool {
	return a == b
}

// Pair is a two-field value whose fields can be borrowed independently.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Split returns pointers to both fields. The fields are disjoint, so both
// pointers may be used simultaneously.
func (p *Pair[A, B]) Split() (*A, *B) {
	return &p.First, &p.Second
}

// Triple is a three-field value whose fields can be borrowed independently.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Split returns pointers to all three fields. The fields are disjoint, so
// all pointers may be used simultaneously.
func (t *Triple[A, B, C]) Split() (*A, *B, *C) {
	return &t.First, &t.Second, &t.Third
}
