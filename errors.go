package milp

import "errors"

// Sentinel errors returned by Option constructors when given a value
// outside their domain. They never reach Solve's caller directly - an
// Option returning one of these is logged and its default is kept - but
// they are exported so a caller validating options ahead of time (e.g. a
// config-driven wrapper) can match on them with errors.Is.
var (
	ErrInvalidPrecision     = errors.New("milp: precision must be positive")
	ErrInvalidMaxPivots     = errors.New("milp: max pivots must be positive")
	ErrInvalidTolerance     = errors.New("milp: tolerance must not be negative")
	ErrInvalidMaxIterations = errors.New("milp: max iterations must be positive")
	ErrNilLogger            = errors.New("milp: logger must not be nil")
)
