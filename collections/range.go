package collections

import "github.com/Invicton-Labs/go-linkedlist/constraints"

// Range creates a slice of integer values from `start` (inclusive) to
// `end` (exclusive). If end is not after start, the slice is empty.
func Range[T constraints.Integer](start T, end T) []T {
	if end <= start {
		return []T{}
	}
	r := make([]T, end-start)
	for i := start; i < end; i++ {
		r[i-start] = i
	}
	return r
}
