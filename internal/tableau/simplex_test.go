package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFurnitureTableau is the textbook "table/dresser" LP: maximize
// 12t + 9d subject to sawing 10t + 20d <= 200, finishing 20t + 10d <= 200,
// in less-than-or-equal form; each row's slack is that row's implicit
// basic variable rather than a column of its own.
func buildFurnitureTableau() *Tableau {
	tb := New(3, 3)
	tb.Set(0, 1, 12)
	tb.Set(0, 2, 9)
	tb.Set(1, 0, 200)
	tb.Set(1, 1, 10)
	tb.Set(1, 2, 20)
	tb.Set(2, 0, 200)
	tb.Set(2, 1, 20)
	tb.Set(2, 2, 10)
	return tb
}

func TestTwoPhaseSimplexOptimal(t *testing.T) {
	tb := buildFurnitureTableau()

	result := TwoPhaseSimplex(tb, 1e-8, 8192, nil)

	require.Equal(t, StatusOptimal, result.Status)
	assert.InDelta(t, -140, result.Value, delta)
}

func TestTwoPhaseSimplexInfeasible(t *testing.T) {
	// x <= -1 with no other rows to fix it: phase-1 cannot reach feasibility.
	tb := New(2, 2)
	tb.Set(1, 0, -1)
	tb.Set(1, 1, 0)

	result := TwoPhaseSimplex(tb, 1e-8, 8192, nil)

	assert.Equal(t, StatusInfeasible, result.Status)
}

func TestTwoPhaseSimplexUnbounded(t *testing.T) {
	// maximize x, no constraint on it at all.
	tb := New(1, 2)
	tb.Set(0, 1, 1)

	result := TwoPhaseSimplex(tb, 1e-8, 8192, nil)

	assert.Equal(t, StatusUnbounded, result.Status)
}

func TestRoundToPrecision(t *testing.T) {
	assert.InDelta(t, 1.0, RoundToPrecision(0.999999996, 1e-8), delta)
	assert.InDelta(t, 0.12345679, RoundToPrecision(0.123456789, 1e-8), 1e-9)
}

func TestMostNegativeRHSRow(t *testing.T) {
	tb := New(3, 2)
	tb.Set(1, 0, -2)
	tb.Set(2, 0, -5)
	assert.Equal(t, 2, mostNegativeRHSRow(tb, 1e-8))
}

func TestMostPositiveReducedCostColumn(t *testing.T) {
	tb := New(1, 3)
	tb.Set(0, 1, 2)
	tb.Set(0, 2, 7)
	assert.Equal(t, 2, mostPositiveReducedCostColumn(tb, 1e-8))
}

func TestBestLeavingRowDegenerateEarlyExit(t *testing.T) {
	tb := New(3, 2)
	tb.Set(1, 0, 0)
	tb.Set(1, 1, 1)
	tb.Set(2, 0, 10)
	tb.Set(2, 1, 1)

	row, unbounded := bestLeavingRow(tb, 1, 1e-8)
	assert.False(t, unbounded)
	assert.Equal(t, 1, row)
}

func TestBestLeavingRowUnbounded(t *testing.T) {
	tb := New(2, 2)
	tb.Set(1, 1, -1)

	_, unbounded := bestLeavingRow(tb, 1, 1e-8)
	assert.True(t, unbounded)
}
