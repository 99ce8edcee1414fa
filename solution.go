package milp

// Status is the terminal condition of a Solve/SolveContext call. It is
// always set; Solve never panics or returns a Go error for a
// solver-domain outcome (only Option construction errors, which are
// logged and defaulted rather than surfaced here).
type Status int

const (
	// StatusOptimal means Result and Variables hold a proven-optimal
	// solution (or one within WithTolerance of optimal, for a MILP that
	// exited early).
	StatusOptimal Status = iota
	// StatusInfeasible means no assignment satisfies every constraint.
	StatusInfeasible
	// StatusUnbounded means the objective can be improved without limit
	// within the feasible region.
	StatusUnbounded
	// StatusCycled means the pivot-history cycle detector (enabled via
	// WithCycleDetection) aborted the simplex run, or a simplex phase used
	// up its WithMaxPivots budget.
	StatusCycled
	// StatusTimedOut means branch-and-cut exhausted its WithTimeout or
	// WithMaxIterations budget before proving optimality. Variables and
	// Result may still hold the best incumbent found so far.
	StatusTimedOut
)

// String renders the status the way a caller would expect to see it in a
// log line or test failure message.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusCycled:
		return "cycled"
	case StatusTimedOut:
		return "timedout"
	default:
		return "unknown"
	}
}

// VariableValue is one decision variable's value in a Solution.
type VariableValue struct {
	Key   string
	Value float64
}

// Solution is the result of a Solve/SolveContext call: a Status, the
// objective Result (meaningful for StatusOptimal and, as a best-so-far
// figure, StatusTimedOut), and the decision variable values reached.
// Variables is ordered by the model's variable order, not sorted by key;
// a duplicate variable key is authoritative by position, never by a
// key lookup into this slice.
type Solution struct {
	Status    Status
	Result    float64
	Variables []VariableValue
}
