package numbers

import (
	"fmt"

	"github.com/Invicton-Labs/go-linkedlist/constraints"
)

// Operator is a relational operator that can be applied to two ordered values.
type Operator int

const (
	Equal Operator = iota
	NotEqual
	Greater
	Less
	GreaterOrEqual
	LessOrEqual
)

func (op Operator) String() string {
	switch op {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case Greater:
		return ">"
	case Less:
		return "<"
	case GreaterOrEqual:
		return ">="
	case LessOrEqual:
		return "<="
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// Compare applies the operator to a and b, in that order. An unknown operator
// always yields false.
func Compare[T constraints.Ordered](op Operator, a T, b T) bool {
	switch op {
	case Equal:
		return a == b
	case NotEqual:
		return a != b
	case Greater:
		return a > b
	case Less:
		return a < b
	case GreaterOrEqual:
		return a >= b
	case LessOrEqual:
		return a <= b
	default:
		return false
	}
}
