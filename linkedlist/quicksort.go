package linkedlist

import (
	"github.com/Invicton-Labs/go-linkedlist/constraints"
	"github.com/Invicton-Labs/go-linkedlist/log"
	"github.com/Invicton-Labs/go-stackerr"
)

// QuickSort runs a recursive Lomuto-partition quicksort over the nodes at
// positions low through high (inclusive), swapping node values.
//
// This is a reference implementation with a known defect, kept as is: the
// partition test "node <= pivot" treats both nodes as list handles and so,
// like every list comparison, compares sums. Each sum covers the sub-chain
// from that node to the tail, not the node's own value. The result is in
// general NOT sorted; for example [0 1 2 3 4] becomes [4 0 1 2 3]. Use Sort
// for ascending order.
//
// The pivot is the node at high. Recursion stops when low >= high. Both
// bounds must address nodes of the list.
func (l *List[T]) QuickSort(low int, high int) stackerr.Error {
	nodes := l.nodes()
	if len(nodes) == 0 {
		return newEmptyListError("quicksort", "the list has no nodes")
	}
	for _, bound := range []int{low, high} {
		if bound < 0 || bound >= len(nodes) {
			return newIndexOutOfRangeError(bound, len(nodes))
		}
	}
	quickSort(nodes, low, high)
	return nil
}

// QuickSortAll runs QuickSort over the whole list.
func (l *List[T]) QuickSortAll() stackerr.Error {
	return l.QuickSort(0, l.Len()-1)
}

func quickSort[T constraints.Numeric](nodes []*Node[T], low int, high int) {
	log.Debugw("Quicksort step", "low", low, "high", high)
	if low < high {
		p := partition(nodes, low, high)
		quickSort(nodes, low, p-1)
		quickSort(nodes, p+1, high)
	}
}

func partition[T constraints.Numeric](nodes []*Node[T], low int, high int) int {
	pivot := &List[T]{head: nodes[high]}
	i := low - 1
	for j := low; j < high; j++ {
		if (&List[T]{head: nodes[j]}).LessOrEqual(pivot) {
			i++
			nodes[i].value, nodes[j].value = nodes[j].value, nodes[i].value
		}
	}
	nodes[i+1].value, nodes[high].value = nodes[high].value, nodes[i+1].value
	return i + 1
}
