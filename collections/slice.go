package collections

import (
	"math/rand"
	"sort"

	"github.com/Invicton-Labs/go-linkedlist/constraints"
)

// Flatten2D flattens a 2-dimensional slice of type T into a 1-dimensional slice of type T
func Flatten2D[T any](slice [][]T) []T {
	if slice == nil {
		return nil
	}
	r := []T{}
	for _, v := range slice {
		r = append(r, v...)
	}
	return r
}

// TransformSlice maps an input slice to an output slice using a transformation function.
func TransformSlice[In any, Out any](in []In, transformationFunc func(value In) (transformed Out)) (out []Out) {
	if in == nil {
		return nil
	}
	out = make([]Out, len(in))
	for i, v := range in {
		out[i] = transformationFunc(v)
	}
	return out
}

// SortSliceAscendingInPlace will sort the given slice in ascending order, leaving
// elements with equal values where they are (stable sort).
func SortSliceAscendingInPlace[SliceType constraints.Ordered](in []SliceType) {
	if in == nil {
		return
	}
	sort.SliceStable(in, func(i, j int) bool { return in[i] < in[j] })
}

// ShuffleSliceInPlace will randomly permute the given slice (Fisher-Yates). If
// r is nil, the shared source from math/rand is used.
func ShuffleSliceInPlace[SliceType any](in []SliceType, r *rand.Rand) {
	swap := func(i, j int) { in[i], in[j] = in[j], in[i] }
	if r == nil {
		rand.Shuffle(len(in), swap)
		return
	}
	r.Shuffle(len(in), swap)
}
