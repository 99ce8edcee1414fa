package milp

import (
	"context"
	"fmt"
	"math"

	"github.com/arnegrahl/milp/internal/tableau"
)

// Solve finds an optimal (or best-effort, see Status) solution to model
// under the given Options. It never blocks on anything but CPU time; for
// cooperative cancellation via a context.Context, use SolveContext.
func Solve(model Model, opts ...Option) Solution {
	return SolveContext(context.Background(), model, opts...)
}

// SolveContext is Solve with a context.Context: branch-and-cut checks
// ctx.Err() alongside WithTimeout/WithMaxIterations on every iteration
// and reports StatusTimedOut, carrying whatever incumbent it had found,
// as soon as the context is cancelled.
func SolveContext(ctx context.Context, model Model, opts ...Option) Solution {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			cfg.logger.Print(fmt.Sprintf("milp: option rejected, keeping default: %v", err))
		}
	}

	spec := normalize(model)
	built := tableau.Build(spec)

	var detector *tableau.CycleDetector
	if cfg.checkCycles {
		detector = tableau.NewCycleDetector()
	}

	result := tableau.TwoPhaseSimplex(built.Tableau, cfg.precision, cfg.maxPivots, detector)
	switch result.Status {
	case tableau.StatusInfeasible:
		return Solution{Status: StatusInfeasible}
	case tableau.StatusUnbounded:
		return unboundedSolution(built, result)
	case tableau.StatusCycled:
		cfg.logger.Print("milp: pivot cycle detected during the LP relaxation")
		return Solution{Status: StatusCycled}
	}

	if len(built.IntegerColumns) == 0 {
		return extractSolution(built, built.Tableau, cfg, StatusOptimal)
	}

	branchResult := tableau.BranchAndCut(
		ctx, built.Tableau, built.IntegerColumns,
		cfg.precision, cfg.maxPivots, cfg.tolerance, cfg.timeout, cfg.maxIterations, cfg.checkCycles,
	)

	switch branchResult.Status {
	case tableau.BranchInfeasible:
		return Solution{Status: StatusInfeasible}
	case tableau.BranchTimedOut:
		cfg.logger.Print("milp: branch-and-cut timed out before proving optimality")
		if branchResult.Tableau == nil {
			return Solution{Status: StatusTimedOut}
		}
		return extractSolution(built, branchResult.Tableau, cfg, StatusTimedOut)
	default:
		return extractSolution(built, branchResult.Tableau, cfg, StatusOptimal)
	}
}

// normalize resolves a Model's polymorphic fields (map-or-ordered-pairs
// constraints/variables, AllIntegers/NoIntegers/IntegerKeys shorthands)
// into the plain, order-fixed tableau.ModelSpec the builder expects.
func normalize(model Model) tableau.ModelSpec {
	var constraints []tableau.ConstraintSpec
	if model.Constraints != nil {
		entries := model.Constraints.constraintEntries()
		constraints = make([]tableau.ConstraintSpec, len(entries))
		for i, e := range entries {
			constraints[i] = tableau.ConstraintSpec{Key: e.key, Bound: tableau.Bound(e.bound)}
		}
	}

	var variables []tableau.VariableSpec
	if model.Variables != nil {
		entries := model.Variables.variableEntries()
		variables = make([]tableau.VariableSpec, len(entries))
		for i, e := range entries {
			variables[i] = tableau.VariableSpec{
				Key:          e.key,
				Coefficients: e.coefficients,
				Binary:       includesKey(model.Binaries, e.key),
				Integer:      includesKey(model.Integers, e.key) || includesKey(model.Binaries, e.key),
			}
		}
	}

	return tableau.ModelSpec{
		Maximize:     model.Direction == Maximize,
		HasObjective: model.Objective != "",
		ObjectiveKey: model.Objective,
		Constraints:  constraints,
		Variables:    variables,
	}
}

// extractSolution reads the decision variable values and objective back
// out of a solved tableau, applying WithIncludeZeroVariables filtering
// and sign normalization, and packages them as a Solution under status.
func extractSolution(built tableau.BuildResult, t *tableau.Tableau, cfg *config, status Status) Solution {
	raw := tableau.Extract(t, len(built.VariableKeys), cfg.precision)

	variables := make([]VariableValue, 0, len(raw))
	for _, v := range raw {
		value := tableau.NormalizeZero(v.Value)
		if value == 0 && !cfg.includeZeroVariables {
			continue
		}
		variables = append(variables, VariableValue{Key: built.VariableKeys[v.Column-1], Value: value})
	}

	return Solution{
		Status:    status,
		Result:    tableau.NormalizeZero(tableau.ExtractObjective(t, built.Sign, cfg.precision)),
		Variables: variables,
	}
}

// unboundedSolution builds the Solution for a StatusUnbounded simplex
// result: Result is sign*+Inf (the internal relaxation always maximizes,
// so it is always the positive ray; folding sign back gives -Inf for a
// minimize model, matching an objective that falls without bound), and
// Variables carries the single decision variable whose entering column
// was driving the unbounded ray, reported at +Inf per its own growth
// rather than sign-folded like an ordinary readback.
func unboundedSolution(built tableau.BuildResult, result tableau.Result) Solution {
	solution := Solution{Status: StatusUnbounded, Result: built.Sign * math.Inf(1)}

	column := int(result.Value)
	variable := built.Tableau.VarAtPos[column]
	if variable >= 1 && variable <= len(built.VariableKeys) {
		solution.Variables = []VariableValue{{Key: built.VariableKeys[variable-1], Value: math.Inf(1)}}
	}
	return solution
}
