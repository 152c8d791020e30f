// Package slicesx provides generic slice helpers not covered by the
// standard slices package.
package slicesx

// AllOrEmpty reports whether s is empty or every element satisfies pred.
func AllOrEmpty[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// First returns the first element of s and whether s is non-empty.
func First[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

// Last returns the last element of s and whether s is non-empty.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// TryMap applies f to every element of s and collects the results. It stops
// at the first error, returning it and no results.
func TryMap[T, U any](s []T, f func(T) (U, error)) ([]U, error) {
	out := make([]U, 0, len(s))
	for _, v := range s {
		u, err := f(v)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}
