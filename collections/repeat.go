package collections

import (
	"github.com/Invicton-Labs/go-linkedlist/constraints"
)

// Repeat creates a slice that repeats the given value a certain
// number of times. A count of zero or less yields an empty slice.
func Repeat[T any, C constraints.Integer](value T, count C) []T {
	if count <= 0 {
		return []T{}
	}
	v := make([]T, count)
	for i := C(0); i < count; i++ {
		v[i] = value
	}
	return v
}
