package tableau

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solvedRoot builds and solves the LP relaxation of: maximize 12t + 9d,
// subject to 10t + 20d <= 200 and 20t + 10d <= 200, then requires it to
// have reached StatusOptimal before handing it to the caller.
func solvedRoot(t *testing.T) (*Tableau, []int) {
	t.Helper()
	spec := ModelSpec{
		Maximize:     true,
		HasObjective: true,
		ObjectiveKey: "profit",
		Constraints: []ConstraintSpec{
			{Key: "sawing", Bound: Bound{Lower: math.Inf(-1), Upper: 200}},
			{Key: "finishing", Bound: Bound{Lower: math.Inf(-1), Upper: 200}},
		},
		Variables: []VariableSpec{
			{Key: "table", Integer: true, Coefficients: map[string]float64{"profit": 12, "sawing": 10, "finishing": 20}},
			{Key: "dresser", Integer: true, Coefficients: map[string]float64{"profit": 9, "sawing": 20, "finishing": 10}},
		},
	}
	built := Build(spec)
	result := TwoPhaseSimplex(built.Tableau, 1e-8, 8192, nil)
	require.Equal(t, StatusOptimal, result.Status)
	return built.Tableau, built.IntegerColumns
}

func TestBranchAndCutFindsIntegerOptimum(t *testing.T) {
	root, integerColumns := solvedRoot(t)

	res := BranchAndCut(context.Background(), root, integerColumns, 1e-8, 8192, 0, time.Second, 10000, false)

	require.Equal(t, BranchOptimal, res.Status)
	assert.GreaterOrEqual(t, res.Objective, RoundToPrecision(root.Get(0, 0), 1e-8))

	values := Extract(res.Tableau, 2, 1e-8)
	for _, v := range values {
		assert.InDelta(t, v.Value, float64(int(v.Value+0.5)), 1e-6)
	}
}

func TestBranchAndCutAlreadyIntegerSkipsSearch(t *testing.T) {
	tb := New(2, 2)
	tb.Set(0, 1, 1)
	tb.Set(1, 0, 4)
	tb.Set(1, 1, 1)
	result := TwoPhaseSimplex(tb, 1e-8, 8192, nil)
	require.Equal(t, StatusOptimal, result.Status)

	res := BranchAndCut(context.Background(), tb, []int{1}, 1e-8, 8192, 0, time.Second, 1000, false)

	assert.Equal(t, BranchOptimal, res.Status)
	assert.Same(t, tb, res.Tableau)
}

func TestBranchAndCutZeroTimeoutTimesOut(t *testing.T) {
	root, integerColumns := solvedRoot(t)

	res := BranchAndCut(context.Background(), root, integerColumns, 1e-8, 8192, 0, 0, 10000, false)

	assert.Equal(t, BranchTimedOut, res.Status)
}

func TestChildCutsDropsOppositeSideSameVariable(t *testing.T) {
	parent := []Cut{{Sign: 1, Variable: 2, Value: 5}}
	children := childCuts(parent, Cut{Sign: -1, Variable: 2, Value: 6})

	require.Len(t, children, 1)
	assert.Equal(t, -1.0, children[0].Sign)
	assert.Equal(t, 6.0, children[0].Value)
}

func TestChildCutsKeepsMatchingSideSameVariable(t *testing.T) {
	parent := []Cut{{Sign: 1, Variable: 2, Value: 5}}
	children := childCuts(parent, Cut{Sign: 1, Variable: 2, Value: 3})

	require.Len(t, children, 2)
}

func TestBranchQueueOrdersByLargestBoundFirst(t *testing.T) {
	q := &branchQueue{{bound: 1}, {bound: 9}, {bound: 4}}
	assert.True(t, q.Less(1, 0))
	assert.False(t, q.Less(0, 1))
}
