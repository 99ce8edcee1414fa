package milp

import "time"

// forever stands in for an unbounded timeout: time.Duration has no
// infinite value, so WithTimeout's absence is represented as a duration
// long enough (~292 years) to never trigger in practice.
const forever = time.Duration(1<<63 - 1)

// config holds the resolved values of every Option, pre-filled with
// their documented defaults before any Option is applied.
type config struct {
	precision            float64
	checkCycles          bool
	maxPivots            int
	tolerance            float64
	timeout              time.Duration
	maxIterations        int
	includeZeroVariables bool
	logger               Logger
}

func defaultConfig() *config {
	return &config{
		precision:            1e-8,
		checkCycles:          false,
		maxPivots:            8192,
		tolerance:            0,
		timeout:              forever,
		maxIterations:        32768,
		includeZeroVariables: false,
		logger:               noopLogger{},
	}
}

// Option configures a Solve/SolveContext call. An Option that rejects its
// argument returns one of the sentinel errors in errors.go; Solve logs
// that error via the configured Logger and keeps the field's default
// rather than aborting, since Solve's signature has no error return.
type Option func(*config) error

// WithPrecision sets the tolerance used for feasibility and integrality
// checks and for rounding reported values. Default 1e-8.
func WithPrecision(precision float64) Option {
	return func(c *config) error {
		if precision <= 0 {
			return ErrInvalidPrecision
		}
		c.precision = precision
		return nil
	}
}

// WithCycleDetection enables the bounded pivot-history cycle detector.
// Default false.
func WithCycleDetection(enabled bool) Option {
	return func(c *config) error {
		c.checkCycles = enabled
		return nil
	}
}

// WithMaxPivots caps the number of pivots performed per phase-1/phase-2
// run (including every branch-and-cut subproblem). Default 8192.
func WithMaxPivots(maxPivots int) Option {
	return func(c *config) error {
		if maxPivots <= 0 {
			return ErrInvalidMaxPivots
		}
		c.maxPivots = maxPivots
		return nil
	}
}

// WithTolerance sets the relative optimality gap branch-and-cut will
// accept before stopping early: the search exits as soon as the
// incumbent is within tolerance of the root LP bound. Default 0 (search
// until proven optimal or budget exhaustion).
func WithTolerance(tolerance float64) Option {
	return func(c *config) error {
		if tolerance < 0 {
			return ErrInvalidTolerance
		}
		c.tolerance = tolerance
		return nil
	}
}

// WithTimeout caps branch-and-cut's wall-clock budget. A duration <= 0
// causes the search to exit on its first iteration, before any branch is
// evaluated: unless the LP relaxation is already integer, the Solution is
// StatusTimedOut with no variables. Default: unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		c.timeout = timeout
		return nil
	}
}

// WithMaxIterations caps the number of branch-and-cut iterations (queue
// pops), independent of the wall-clock timeout. Default 32768.
func WithMaxIterations(maxIterations int) Option {
	return func(c *config) error {
		if maxIterations <= 0 {
			return ErrInvalidMaxIterations
		}
		c.maxIterations = maxIterations
		return nil
	}
}

// WithIncludeZeroVariables controls whether variables that round to zero
// appear in Solution.Variables. Default false (they are omitted).
func WithIncludeZeroVariables(include bool) Option {
	return func(c *config) error {
		c.includeZeroVariables = include
		return nil
	}
}

// WithLogger sets the Logger that receives the solver's diagnostic
// lines. Default: a no-op logger.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return ErrNilLogger
		}
		c.logger = logger
		return nil
	}
}
