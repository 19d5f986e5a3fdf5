package numbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		op         Operator
		lt, eq, gt bool
	}{
		{Equal, false, true, false},
		{NotEqual, true, false, true},
		{Greater, false, false, true},
		{Less, true, false, false},
		{GreaterOrEqual, false, true, true},
		{LessOrEqual, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.lt, Compare(tt.op, 1, 2))
			assert.Equal(t, tt.eq, Compare(tt.op, 2, 2))
			assert.Equal(t, tt.gt, Compare(tt.op, 3.5, 2))
		})
	}
}

func TestUnknownOperator(t *testing.T) {
	op := Operator(42)
	assert.Equal(t, "Operator(42)", op.String())
	assert.False(t, Compare(op, 1, 1))
	assert.False(t, Compare(op, 1, 2))
}
