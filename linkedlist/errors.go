package linkedlist

import (
	"github.com/Invicton-Labs/go-stackerr"
)

// Aliased so that embedding it names the field stackError, which keeps
// the promoted Error method visible.
type stackError = stackerr.Error

// UnsupportedOperandError is returned when an arithmetic or concatenation
// operation is given an operand that is neither the list's scalar type nor
// a list of that type, or when an in-place concatenation would link a chain
// back into itself.
type UnsupportedOperandError struct {
	stackError
	Operation string
	Operand   any
}

func newUnsupportedOperandError(operation string, operand any, reason string) *UnsupportedOperandError {
	return &UnsupportedOperandError{
		stackError: stackerr.Errorf("unsupported operand for %s (%T): %s", operation, operand, reason),
		Operation:  operation,
		Operand:    operand,
	}
}

// IndexOutOfRangeError is returned when an index does not address a node
// of the list.
type IndexOutOfRangeError struct {
	stackError
	Index  int
	Length int
}

func newIndexOutOfRangeError(index int, length int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{
		stackError: stackerr.Errorf("index %d out of range for list of length %d", index, length),
		Index:      index,
		Length:     length,
	}
}

// InvalidRepeatCountError is returned by RepeatInPlace for a count that is
// not a positive integer.
type InvalidRepeatCountError struct {
	stackError
	Count int
}

func newInvalidRepeatCountError(count int) *InvalidRepeatCountError {
	return &InvalidRepeatCountError{
		stackError: stackerr.Errorf("repeat count must be positive, got %d", count),
		Count:      count,
	}
}

// EmptyListError is returned when an operation needs at least one node
// (or, for Remove, needs a node to remain afterwards).
type EmptyListError struct {
	stackError
	Operation string
}

func newEmptyListError(operation string, reason string) *EmptyListError {
	return &EmptyListError{
		stackError: stackerr.Errorf("cannot %s: %s", operation, reason),
		Operation:  operation,
	}
}
