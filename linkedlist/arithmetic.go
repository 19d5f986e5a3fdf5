package linkedlist

import (
	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-linkedlist/log"
	"github.com/Invicton-Labs/go-linkedlist/numbers"
	"github.com/Invicton-Labs/go-stackerr"
)

// AddScalar returns the sum of the list's values plus v.
func (l *List[T]) AddScalar(v T) T {
	return l.Sum() + v
}

// Concat returns a new list holding this list's values followed by the
// other list's values. Neither list is modified.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	c := FromSlice(l.ToSlice())
	c.PushMany(other.ToSlice())
	return c
}

// Add dispatches on the operand type. For a scalar of the list's type it
// returns AddScalar(other) in sum; for a *List[T] it returns
// Concat(other) in concatenated. Any other operand is an
// UnsupportedOperandError.
func (l *List[T]) Add(other any) (sum T, concatenated *List[T], err stackerr.Error) {
	switch o := other.(type) {
	case T:
		return l.AddScalar(o), nil, nil
	case *List[T]:
		if o == nil {
			return sum, nil, newUnsupportedOperandError("add", other, "nil list")
		}
		return sum, l.Concat(o), nil
	default:
		return sum, nil, newUnsupportedOperandError("add", other, "expected a scalar of the list's type or a list")
	}
}

// ConcatInPlace appends to this list. A scalar of the list's type is
// pushed as a new tail node. For a *List[T], the other list's head is
// linked in as the next node of this list's tail, without copying.
//
// Linking transfers the other chain into this one: the other handle keeps
// pointing at what is now a suffix of this list, and anything done through
// it (pushes, sorts, SetValue on its nodes) is visible through this list.
//
// A splice that would make the chain loop back on itself, such as
// concatenating a list with itself or with a chain it has already absorbed,
// is refused with an UnsupportedOperandError.
func (l *List[T]) ConcatInPlace(other any) stackerr.Error {
	switch o := other.(type) {
	case T:
		l.Push(o)
		return nil
	case *List[T]:
		if o == nil {
			return newUnsupportedOperandError("in-place concatenation", other, "nil list")
		}
		if o.head == nil {
			return nil
		}
		if l.head == nil {
			l.head = o.head
			return nil
		}
		tail := l.head.tail()
		for n := range o.Nodes() {
			if n == tail {
				log.Debugw("Refused in-place concatenation", "reason", "cycle", "receiver_length", l.Len())
				return newUnsupportedOperandError("in-place concatenation", other, "the operand already shares nodes with this list")
			}
		}
		tail.next = o.head
		log.Debugw("Spliced chain into list", "length", l.Len())
		return nil
	default:
		return newUnsupportedOperandError("in-place concatenation", other, "expected a scalar of the list's type or a list")
	}
}

// RepeatInPlace appends the list's current values n-1 more times, so the
// final length is n times the original length. The count must be positive.
func (l *List[T]) RepeatInPlace(n int) stackerr.Error {
	if n <= 0 {
		return newInvalidRepeatCountError(n)
	}
	values := l.ToSlice()
	l.PushMany(collections.Flatten2D(collections.Repeat(values, n-1)))
	return nil
}

// Compare reduces the list to its sum and applies op against other, which
// is either a scalar of the list's type or a *List[T] (itself reduced to its
// sum). For any other operand the lists are not comparable and the result
// is false, whatever the operator.
func (l *List[T]) Compare(op numbers.Operator, other any) bool {
	var rhs T
	switch o := other.(type) {
	case T:
		rhs = o
	case *List[T]:
		if o == nil {
			return false
		}
		rhs = o.Sum()
	default:
		return false
	}
	return numbers.Compare(op, l.Sum(), rhs)
}

func (l *List[T]) Equals(other any) bool {
	return l.Compare(numbers.Equal, other)
}

func (l *List[T]) NotEquals(other any) bool {
	return l.Compare(numbers.NotEqual, other)
}

func (l *List[T]) GreaterThan(other any) bool {
	return l.Compare(numbers.Greater, other)
}

func (l *List[T]) LessThan(other any) bool {
	return l.Compare(numbers.Less, other)
}

func (l *List[T]) GreaterOrEqual(other any) bool {
	return l.Compare(numbers.GreaterOrEqual, other)
}

func (l *List[T]) LessOrEqual(other any) bool {
	return l.Compare(numbers.LessOrEqual, other)
}
