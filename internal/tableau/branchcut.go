package tableau

import (
	"container/heap"
	"context"
	"math"
	"time"
)

// Cut is one bound added to a branch: Sign +1 encodes "variable <= Value",
// Sign -1 encodes "variable >= Value". Variable is the abstract variable
// index (the decision variable's permanent, pivot-independent identity -
// its original tableau column), not a current row/column position.
type Cut struct {
	Sign     float64
	Variable int
	Value    float64
}

// Branch is one node of the branch-and-cut search tree: the LP bound
// inherited (optimistically) from its parent, stored as the objective
// value under the internal maximize convention (the negation of the
// parent's M[0,0]), and the cuts that
// distinguish it from its siblings. Cuts lists are never mutated after a
// Branch is pushed - children are built by copy-and-append.
type Branch struct {
	bound float64
	cuts  []Cut
}

// branchQueue is a best-first priority queue of Branch records. Because
// a branch's achievable bound can only shrink (or stay the same) as more
// cuts are layered onto it, under the internal always-maximize convention
// the most promising unexplored branch at any time is the one with the
// largest bound; Less is defined accordingly so container/heap's min-heap
// machinery pops that branch first.
type branchQueue []Branch

func (q branchQueue) Len() int            { return len(q) }
func (q branchQueue) Less(i, j int) bool  { return q[i].bound > q[j].bound }
func (q branchQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *branchQueue) Push(x interface{}) { *q = append(*q, x.(Branch)) }
func (q *branchQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// BranchStatus is the terminal condition of a branch-and-cut search.
type BranchStatus int

const (
	BranchOptimal BranchStatus = iota
	BranchTimedOut
	BranchInfeasible
)

// BranchResult is the outcome of BranchAndCut: a status, the achieved
// objective as held in M[0,0] (the negated internal objective; NaN if no
// incumbent was ever found), and the tableau that
// produced it (nil under the same condition).
type BranchResult struct {
	Status    BranchStatus
	Objective float64
	Tableau   *Tableau
}

// ApplyCuts rebuilds dst as a copy of root extended with one row per cut.
// Every cut is expressed against the root tableau directly (never against
// a previously applied cut in the same branch), exploiting the fact that
// at the root a basic variable's value equals its row's right-hand side.
func ApplyCuts(dst *Tableau, root *Tableau, cuts []Cut) {
	dst.CopyFrom(root)
	for _, cut := range cuts {
		row := dst.AppendRow()
		pos := root.PosOfVar[cut.Variable]
		if pos < root.Width {
			dst.Set(row, 0, cut.Sign*cut.Value)
			dst.Set(row, pos, cut.Sign)
			continue
		}
		srcRow := pos - root.Width
		dst.Set(row, 0, cut.Sign*(cut.Value-root.Get(srcRow, 0)))
		for c := 1; c < root.Width; c++ {
			dst.Set(row, c, -cut.Sign*root.Get(srcRow, c))
		}
	}
}

// mostFractional finds the integer-marked column whose current basic
// value has the largest |v - round(v)|, ties broken by first column
// index. A non-basic integer column is implicitly 0 (already integer) and
// never wins. fraction is 0 if every integer column is already
// integer-valued (including the case where none is basic at all).
func mostFractional(t *Tableau, integerColumns []int, precision float64) (col int, value float64, fraction float64) {
	col = -1
	for _, c := range integerColumns {
		pos := t.PosOfVar[c]
		if pos < t.Width {
			continue
		}
		v := t.Get(pos-t.Width, 0)
		f := math.Abs(v - math.Round(v))
		if f > fraction {
			col, value, fraction = c, v, f
		}
	}
	return col, value, fraction
}

// childCuts builds the cut list for one child branch: the parent's cuts,
// with any existing cut on the same variable as newCut dropped unless it
// is on the matching side, followed by newCut itself.
func childCuts(parent []Cut, newCut Cut) []Cut {
	out := make([]Cut, 0, len(parent)+1)
	for _, c := range parent {
		if c.Variable == newCut.Variable && c.Sign != newCut.Sign {
			continue
		}
		out = append(out, c)
	}
	return append(out, newCut)
}

// BranchAndCut performs a best-first branch-and-cut search over root, an
// already phase-1/phase-2-solved LP relaxation known to be optimal. If no
// entry of integerColumns is fractional in root, it returns root itself as
// BranchOptimal without searching.
//
// The two scratch tableaus it allocates are sized once, to root's height
// plus two rows per integer column, and reused for the entire search: one
// holds the branch currently being evaluated, the other persists the best
// integer-feasible solution found so far, with roles swapped (not
// reallocated) whenever a new incumbent is found.
func BranchAndCut(ctx context.Context, root *Tableau, integerColumns []int, precision float64, maxPivots int, tolerance float64, timeout time.Duration, maxIterations int, checkCycles bool) BranchResult {
	col, value, maxFrac := mostFractional(root, integerColumns, precision)
	if maxFrac <= precision {
		return BranchResult{
			Status:    BranchOptimal,
			Objective: RoundToPrecision(root.Get(0, 0), precision),
			Tableau:   root,
		}
	}

	rootBound := root.Get(0, 0)
	capRows := root.Height + 2*len(integerColumns)
	candidate := NewWithCapacity(root.Height, root.Width, capRows)
	incumbent := NewWithCapacity(root.Height, root.Width, capRows)

	queue := &branchQueue{
		{bound: -rootBound, cuts: []Cut{{Sign: 1, Variable: col, Value: math.Floor(value)}}},
		{bound: -rootBound, cuts: []Cut{{Sign: -1, Variable: col, Value: math.Ceil(value)}}},
	}
	heap.Init(queue)

	// bestEval is the incumbent's M[0,0], the negated objective: lower is better.
	bestEval := math.Inf(1)
	haveIncumbent := false
	budgetExhausted := false
	normallyCompleted := false

	start := time.Now()
	iter := 0
	for ; iter < maxIterations; iter++ {
		if timeout <= 0 || time.Since(start) >= timeout || ctx.Err() != nil {
			budgetExhausted = true
			break
		}
		if queue.Len() == 0 {
			normallyCompleted = true
			break
		}

		branch := heap.Pop(queue).(Branch)
		if haveIncumbent && -branch.bound >= bestEval {
			normallyCompleted = true
			break
		}

		ApplyCuts(candidate, root, branch.cuts)
		var detector *CycleDetector
		if checkCycles {
			detector = NewCycleDetector()
		}
		result := TwoPhaseSimplex(candidate, precision, maxPivots, detector)

		if result.Status == StatusOptimal && (!haveIncumbent || result.Value < bestEval) {
			childCol, childVal, childFrac := mostFractional(candidate, integerColumns, precision)
			if childFrac <= precision {
				haveIncumbent = true
				bestEval = result.Value
				candidate, incumbent = incumbent, candidate
			} else {
				heap.Push(queue, Branch{
					bound: -result.Value,
					cuts:  childCuts(branch.cuts, Cut{Sign: 1, Variable: childCol, Value: math.Floor(childVal)}),
				})
				heap.Push(queue, Branch{
					bound: -result.Value,
					cuts:  childCuts(branch.cuts, Cut{Sign: -1, Variable: childCol, Value: math.Ceil(childVal)}),
				})
			}
		}

		if haveIncumbent && bestEval-rootBound <= tolerance*math.Abs(rootBound) {
			normallyCompleted = true
			break
		}
	}
	if !budgetExhausted && !normallyCompleted {
		budgetExhausted = true // the maxIterations cap itself was exhausted
	}

	switch {
	case haveIncumbent && !budgetExhausted:
		return BranchResult{Status: BranchOptimal, Objective: bestEval, Tableau: incumbent}
	case haveIncumbent && budgetExhausted:
		return BranchResult{Status: BranchTimedOut, Objective: bestEval, Tableau: incumbent}
	case budgetExhausted:
		// Budget ran out before any incumbent was found: unproven, not
		// disproven - the model may yet be feasible.
		return BranchResult{Status: BranchTimedOut, Objective: math.NaN()}
	default:
		return BranchResult{Status: BranchInfeasible, Objective: math.NaN()}
	}
}
