package tableau

import "math"

// mergedConstraint tracks one constraint key's accumulated bound and the
// row(s) it was finally assigned, in first-occurrence order.
type mergedConstraint struct {
	key        string
	bound      Bound
	upperRow   int // -1 if the upper side is unbounded (no row)
	lowerRow   int // -1 if the lower side is unbounded (no row)
}

// Build deterministically constructs the initial tableau from a
// ModelSpec. The construction order below is fixed and load-bearing: it
// is what makes Build's output reproducible across runs for the same
// ModelSpec.
//
//  1. Variables are materialized in caller order (duplicates preserved).
//  2. Each variable is classified into the binary and/or integer column
//     sets (binary implies integer; plain integer-only is recorded
//     separately).
//  3. Constraints are merged by first-occurrence key, taking the
//     tightest lower and upper bound seen for each key.
//  4. Each merged constraint is assigned 0, 1 or 2 rows depending on how
//     many of its sides are finite.
//  5. The matrix is allocated and the identity position bijection set.
//  6. Coefficients are filled: a variable's coefficient for a key that
//     matches the objective goes into row 0 (sign-folded); a coefficient
//     for a key that names a constraint goes into that constraint's
//     upper and/or lower row (negated on the lower side).
//  7. The RHS column is filled from each row's bound.
//  8. One extra row per binary variable enforces value <= 1.
func Build(spec ModelSpec) BuildResult {
	sign := 1.0
	if !spec.Maximize {
		sign = -1.0
	}

	variableKeys := make([]string, len(spec.Variables))
	binaryColumns := make([]int, 0)
	integerColumns := make([]int, 0)
	for i, v := range spec.Variables {
		variableKeys[i] = v.Key
		col := i + 1
		switch {
		case v.Binary:
			binaryColumns = append(binaryColumns, col)
			integerColumns = append(integerColumns, col)
		case v.Integer:
			integerColumns = append(integerColumns, col)
		}
	}

	merged := mergeConstraints(spec.Constraints)

	row := 1
	for i := range merged {
		m := &merged[i]
		m.upperRow, m.lowerRow = -1, -1
		finiteUpper := !math.IsInf(m.bound.Upper, 1)
		finiteLower := !math.IsInf(m.bound.Lower, -1)
		if finiteUpper {
			m.upperRow = row
			row++
		}
		if finiteLower {
			m.lowerRow = row
			row++
		}
	}
	constraintRows := row - 1

	width := len(spec.Variables) + 1
	height := 1 + constraintRows + len(binaryColumns)

	t := New(height, width)

	byKey := make(map[string]*mergedConstraint, len(merged))
	for i := range merged {
		byKey[merged[i].key] = &merged[i]
	}

	for i, v := range spec.Variables {
		col := i + 1
		for key, coef := range v.Coefficients {
			if spec.HasObjective && key == spec.ObjectiveKey {
				t.Set(0, col, sign*coef)
			}
			if c, ok := byKey[key]; ok {
				if c.upperRow >= 0 {
					t.Set(c.upperRow, col, coef)
				}
				if c.lowerRow >= 0 {
					t.Set(c.lowerRow, col, -coef)
				}
			}
		}
	}

	for i := range merged {
		m := &merged[i]
		if m.upperRow >= 0 {
			t.Set(m.upperRow, 0, m.bound.Upper)
		}
		if m.lowerRow >= 0 {
			t.Set(m.lowerRow, 0, -m.bound.Lower)
		}
	}

	binRow := 1 + constraintRows
	for _, col := range binaryColumns {
		t.Set(binRow, 0, 1)
		t.Set(binRow, col, 1)
		binRow++
	}

	return BuildResult{
		Tableau:        t,
		Sign:           sign,
		VariableKeys:   variableKeys,
		IntegerColumns: integerColumns,
	}
}

// mergeConstraints folds duplicate keys by bound intersection, preserving
// first-occurrence order.
func mergeConstraints(specs []ConstraintSpec) []mergedConstraint {
	order := make([]mergedConstraint, 0, len(specs))
	index := make(map[string]int, len(specs))
	for _, s := range specs {
		if i, ok := index[s.Key]; ok {
			order[i].bound = order[i].bound.merge(s.Bound)
			continue
		}
		index[s.Key] = len(order)
		order = append(order, mergedConstraint{key: s.Key, bound: s.Bound})
	}
	return order
}
