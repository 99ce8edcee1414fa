package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 0.0000001

func TestPivotGaussJordanElimination(t *testing.T) {
	// maximize 3x + 2y s.t. x + y <= 4, x + 3y <= 6
	tb := New(3, 3)
	tb.Set(0, 1, 3)
	tb.Set(0, 2, 2)
	tb.Set(1, 0, 4)
	tb.Set(1, 1, 1)
	tb.Set(1, 2, 1)
	tb.Set(2, 0, 6)
	tb.Set(2, 1, 1)
	tb.Set(2, 2, 3)

	tb.Pivot(1, 1)

	// The pivot column now holds the leaving slack's coefficients:
	// 1/q in the pivot row and -k/q in every other row.
	assert.InDelta(t, 1, tb.Get(1, 1), delta)
	assert.InDelta(t, -3, tb.Get(0, 1), delta)
	assert.InDelta(t, -1, tb.Get(2, 1), delta)
	assert.True(t, tb.IsBasic(1))
	assert.Equal(t, 1, tb.BasicRow(1))
}

func TestPivotSwapsBijection(t *testing.T) {
	tb := New(2, 2)
	tb.Set(1, 1, 2)
	tb.Pivot(1, 1)

	// Row 1 is position Width+1 = 3, so variable 3 leaves into column 1.
	assert.True(t, tb.IsBasic(1))
	assert.False(t, tb.IsBasic(3))
	assert.Equal(t, 3, tb.VarAtPos[1])
}

func TestCycleDetectorNoFalsePositiveBelowMinLength(t *testing.T) {
	d := NewCycleDetector()
	for i := 0; i < 4; i++ {
		assert.False(t, d.Record(1, 2))
		assert.False(t, d.Record(2, 1))
	}
}

func TestCycleDetectorDetectsRepeatedSequence(t *testing.T) {
	d := NewCycleDetector()
	seq := []pivotStep{{1, 2}, {3, 4}, {5, 6}}
	cycled := false
	for rep := 0; rep < 4 && !cycled; rep++ {
		for _, s := range seq {
			cycled = d.Record(s.leaving, s.entering)
			if cycled {
				break
			}
		}
	}
	assert.True(t, cycled)
}
