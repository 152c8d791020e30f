// Package iterx provides helpers over iter.Seq sequences.
package iterx

import "iter"

// EveryNth returns a sequence yielding every nth element of seq, starting
// with the first. EveryNth panics if n is not positive.
func EveryNth[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		panic("iterx: n must be greater than 0")
	}
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i%n == 0 && !yield(v) {
				return
			}
			i++
		}
	}
}

// Take collects up to the first n elements of seq into a slice.
func Take[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
