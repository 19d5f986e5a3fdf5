// Package constraints defines the type-parameter constraints shared by
// the generic helpers in this module.
package constraints

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// Ordered is any type that supports the < <= >= > operators.
type Ordered interface {
	Integer | Float | ~string
}

// Numeric is any scalar type that supports both arithmetic and ordering.
// It is the element constraint of the linked list.
type Numeric interface {
	Integer | Float
}
