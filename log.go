package milp

// Logger receives the handful of diagnostic lines the solver cannot
// otherwise surface through Solution.Status: a detected pivot cycle, a
// branch-and-cut timeout reached with no threshold-satisfying incumbent,
// and an Option rejected at Solve time (its default is used instead).
// No line is logged from the per-pivot hot loop.
type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}
