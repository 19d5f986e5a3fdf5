package collections

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten2D(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, Flatten2D([][]int{{1, 2}, {}, {3, 4}}))
	assert.Equal(t, []int{}, Flatten2D([][]int{}))
	assert.Nil(t, Flatten2D[int](nil))
}

func TestTransformSlice(t *testing.T) {
	out := TransformSlice([]int{1, -2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "-2", "3"}, out)
	assert.Nil(t, TransformSlice[int, string](nil, strconv.Itoa))
}

func TestSortSliceAscendingInPlace(t *testing.T) {
	in := []float64{2.5, -1, 0, 2.5, -3.25}
	SortSliceAscendingInPlace(in)
	assert.Equal(t, []float64{-3.25, -1, 0, 2.5, 2.5}, in)
}

func TestShuffleSliceInPlace(t *testing.T) {
	in := Range(0, 20)
	ShuffleSliceInPlace(in, rand.New(rand.NewSource(7)))
	assert.ElementsMatch(t, Range(0, 20), in)

	again := Range(0, 20)
	ShuffleSliceInPlace(again, rand.New(rand.NewSource(7)))
	assert.Equal(t, in, again)

	shared := Range(0, 20)
	ShuffleSliceInPlace(shared, nil)
	assert.ElementsMatch(t, Range(0, 20), shared)
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []string{"a", "a", "a"}, Repeat("a", 3))
	assert.Equal(t, [][]int{{1, 2}, {1, 2}}, Repeat([]int{1, 2}, uint8(2)))
	assert.Equal(t, []int{}, Repeat(1, 0))
	assert.Equal(t, []int{}, Repeat(1, -4))
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Range(0, 5))
	assert.Equal(t, []int64{-2, -1, 0}, Range[int64](-2, 1))
	assert.Equal(t, []int{}, Range(3, 3))
	assert.Equal(t, []int{}, Range(5, 1))
}

func TestMaps(t *testing.T) {
	a := map[string]int{"x": 1, "y": 2}
	c := CopyMap(a)
	c["x"] = 10
	assert.Equal(t, 1, a["x"])

	merged := MergeMaps(a, map[string]int{"y": 3, "z": 4})
	assert.Equal(t, map[string]int{"x": 1, "y": 3, "z": 4}, merged)
	assert.Nil(t, MergeMaps[string, int]())

	assert.ElementsMatch(t, []string{"x", "y"}, MapKeys(a))
}
