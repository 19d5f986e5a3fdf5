// Package linkedlist implements a singly linked list of numeric scalars
// with in-place rearrangement algorithms and whole-list arithmetic.
//
// Lists compare by the sum of their values: two lists (or a list and a
// scalar) are reduced to scalars first, then the relational operator is
// applied. Lists with different contents but equal sums are therefore
// equal.
//
// To iterate over a list (where l is a *List[T]):
//
//	for n := l.Front(); n != nil; n = n.Next() {
//		// do something with n.Value()
//	}
//
// A List is not safe for concurrent use.
package linkedlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-linkedlist/constraints"
	"github.com/Invicton-Labs/go-stackerr"
)

// terminator is rendered after the last value of every list.
const terminator = "None"

// List is a handle on a chain of nodes. The zero value is an empty list
// ready to use.
//
// A List stores only its head. Neither the tail nor the length is cached,
// since a chain absorbed by ConcatInPlace can still grow or change through
// the handle it came from.
type List[T constraints.Numeric] struct {
	head *Node[T]
}

// New returns an empty list.
func New[T constraints.Numeric]() *List[T] {
	return &List[T]{}
}

// Create returns a list with a single node holding value.
func Create[T constraints.Numeric](value T) *List[T] {
	return &List[T]{head: &Node[T]{value: value}}
}

// FromSlice returns a list holding the given values in order.
func FromSlice[T constraints.Numeric](values []T) *List[T] {
	l := New[T]()
	l.PushMany(values)
	return l
}

// Front returns the head node, or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Push appends a new tail node holding value. It walks the whole chain to
// find the tail.
func (l *List[T]) Push(value T) {
	n := &Node[T]{value: value}
	if l.head == nil {
		l.head = n
		return
	}
	l.head.tail().next = n
}

// PushMany appends each of the values, in order.
func (l *List[T]) PushMany(values []T) {
	if len(values) == 0 {
		return
	}
	if l.head == nil {
		l.head = &Node[T]{value: values[0]}
		values = values[1:]
	}
	tail := l.head.tail()
	for _, v := range values {
		tail.next = &Node[T]{value: v}
		tail = tail.next
	}
}

// Nodes returns a sequence of the list's nodes from head to tail. The
// sequence can be ranged over any number of times.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Values returns a sequence of the list's values from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range l.Nodes() {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice returns the list's values from head to tail.
func (l *List[T]) ToSlice() []T {
	values := []T{}
	for v := range l.Values() {
		values = append(values, v)
	}
	return values
}

func (l *List[T]) nodes() []*Node[T] {
	nodes := []*Node[T]{}
	for n := range l.Nodes() {
		nodes = append(nodes, n)
	}
	return nodes
}

// rewrite stores values into the list's nodes, in order. It expects exactly
// one value per node.
func (l *List[T]) rewrite(values []T) {
	i := 0
	for n := range l.Nodes() {
		n.value = values[i]
		i++
	}
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.head.Len()
}

// Sum returns the total of all values, or zero for an empty list.
func (l *List[T]) Sum() T {
	return l.head.Sum()
}

// Contains reports whether any node holds item.
func (l *List[T]) Contains(item T) bool {
	for v := range l.Values() {
		if v == item {
			return true
		}
	}
	return false
}

// At returns the node at the given index. Negative indexes count back from
// the tail, so -1 is the last node.
func (l *List[T]) At(index int) (*Node[T], stackerr.Error) {
	nodes := l.nodes()
	i := index
	if i < 0 {
		i += len(nodes)
	}
	if i < 0 || i >= len(nodes) {
		return nil, newIndexOutOfRangeError(index, len(nodes))
	}
	return nodes[i], nil
}

// Render returns the values joined by "->" and terminated by "None", for
// example "1->2->3->None". An empty list renders as "None".
func (l *List[T]) Render() string {
	parts := collections.TransformSlice(l.ToSlice(), func(v T) string {
		return fmt.Sprint(v)
	})
	return strings.Join(append(parts, terminator), "->")
}

func (l *List[T]) String() string {
	return l.Render()
}
