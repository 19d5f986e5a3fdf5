package linkedlist

import (
	"github.com/Invicton-Labs/go-linkedlist/constraints"
)

// Node is a single link of a chain. It owns the node that follows it; the
// last node of a chain has no next node.
type Node[T constraints.Numeric] struct {
	value T
	next  *Node[T]
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the value held by the node. Every list handle whose
// chain passes through this node observes the change.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Next returns the following node, or nil if n is the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Len returns the number of nodes from n to the tail, inclusive.
func (n *Node[T]) Len() int {
	length := 0
	for ; n != nil; n = n.next {
		length++
	}
	return length
}

// Sum returns the total of the values from n to the tail, inclusive.
func (n *Node[T]) Sum() T {
	var total T
	for ; n != nil; n = n.next {
		total += n.value
	}
	return total
}

func (n *Node[T]) tail() *Node[T] {
	for n.next != nil {
		n = n.next
	}
	return n
}
