package linkedlist

import (
	"math/rand"

	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-stackerr"
)

// Remove removes the value at the given 0-based index. Every later value
// moves one node toward the head and the tail node is dropped, so the list
// shrinks by one node.
//
// A list is never emptied by Remove: removing from an empty list or from a
// single-node list is an EmptyListError. An index outside the list is an
// IndexOutOfRangeError.
func (l *List[T]) Remove(index int) stackerr.Error {
	if l.head == nil {
		return newEmptyListError("remove", "the list has no nodes")
	}
	length := l.Len()
	if index < 0 || index >= length {
		return newIndexOutOfRangeError(index, length)
	}
	if length == 1 {
		return newEmptyListError("remove", "the only node of a list cannot be removed")
	}

	var prev *Node[T]
	n := l.head
	for i := 0; n.next != nil; i++ {
		if i >= index {
			n.value = n.next.value
		}
		prev = n
		n = n.next
	}
	prev.next = nil
	return nil
}

// Shuffle randomly permutes the values in place using the shared
// math/rand source. Nodes stay where they are; only values move.
func (l *List[T]) Shuffle() {
	l.ShuffleWithRand(nil)
}

// ShuffleWithRand is Shuffle with a caller-provided random source.
func (l *List[T]) ShuffleWithRand(r *rand.Rand) {
	values := l.ToSlice()
	collections.ShuffleSliceInPlace(values, r)
	l.rewrite(values)
}

// Sort sorts the values in ascending order, in place.
func (l *List[T]) Sort() {
	values := l.ToSlice()
	collections.SortSliceAscendingInPlace(values)
	l.rewrite(values)
}

// Reverse reverses the order of the values in place by swapping values
// between mirrored positions.
func (l *List[T]) Reverse() {
	nodes := l.nodes()
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i].value, nodes[j].value = nodes[j].value, nodes[i].value
	}
}
