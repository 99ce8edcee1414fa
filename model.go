/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package milp implements a linear and mixed-integer-linear programming
// solver over a dense simplex tableau, built with a best-first
// branch-and-cut search for integer and binary variables.
//
// As an example of the API, a small furniture-shop problem - maximize
// 12t + 9d subject to a sawing budget 10t + 20d <= 200 and a finishing
// budget 20t + 10d <= 200, with both t and d integer - can be expressed
// like this:
//
//	model := milp.Model{
//		Direction: milp.Maximize,
//		Objective: "profit",
//		Constraints: milp.ConstraintMap{
//			"sawing":     milp.Max(200),
//			"finishing":  milp.Max(200),
//		},
//		Variables: milp.VariableMap{
//			"table":   milp.CoefficientMap{"profit": 12, "sawing": 10, "finishing": 20},
//			"dresser": milp.CoefficientMap{"profit": 9, "sawing": 20, "finishing": 10},
//		},
//		Integers: milp.AllIntegers,
//	}
//
//	solution := milp.Solve(model)
package milp

import (
	"math"
	"sort"
)

// Direction selects whether Solve maximizes or minimizes the objective.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Bound is a two-sided bound on a constraint or, via Equal, a fixed
// value. Use math.Inf(-1)/math.Inf(1) directly for an unbounded side, or
// one of Min, Max, Equal, Between to build one without spelling out the
// infinities.
type Bound struct {
	Lower float64
	Upper float64
}

// Min returns a lower-bounded-only Bound: v <= expression.
func Min(v float64) Bound {
	return Bound{Lower: v, Upper: math.Inf(1)}
}

// Max returns an upper-bounded-only Bound: expression <= v.
func Max(v float64) Bound {
	return Bound{Lower: math.Inf(-1), Upper: v}
}

// Equal returns a Bound pinning the expression to exactly v. Per design,
// this is strictly {Lower: v, Upper: v} - no implicit range is inferred
// from a single value.
func Equal(v float64) Bound {
	return Bound{Lower: v, Upper: v}
}

// Between returns a two-sided Bound: lower <= expression <= upper.
func Between(lower, upper float64) Bound {
	return Bound{Lower: lower, Upper: upper}
}

// Coefficients is a variable's entries in the objective and/or one or
// more constraints, keyed by the same keys used for Model.Objective and
// Model.Constraints. It is implemented by CoefficientMap (unordered) and
// CoefficientList (ordered, last-entry-wins on a repeated key).
type Coefficients interface {
	coefficientMap() map[string]float64
}

// CoefficientMap is the map-shaped Coefficients variant.
type CoefficientMap map[string]float64

func (m CoefficientMap) coefficientMap() map[string]float64 { return m }

// CoefficientEntry is one key/value pair of the ordered Coefficients
// variant, CoefficientList.
type CoefficientEntry struct {
	Key   string
	Value float64
}

// CoefficientList is the ordered-pairs Coefficients variant: later
// entries win over earlier ones sharing the same Key.
type CoefficientList []CoefficientEntry

func (l CoefficientList) coefficientMap() map[string]float64 {
	out := make(map[string]float64, len(l))
	for _, e := range l {
		out[e.Key] = e.Value
	}
	return out
}

// VariableSet is the polymorphic shape of Model.Variables: either a
// VariableMap (unordered, keys sorted lexically at solve time for
// determinism) or a VariableList (caller-ordered, duplicates preserved
// as distinct columns).
type VariableSet interface {
	variableEntries() []variableEntry
}

// variableEntry is the normalized, order-resolved form of one variable.
type variableEntry struct {
	key          string
	coefficients map[string]float64
}

// VariableMap is the map-shaped VariableSet variant.
type VariableMap map[string]Coefficients

func (m VariableMap) variableEntries() []variableEntry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]variableEntry, len(keys))
	for i, k := range keys {
		out[i] = variableEntry{key: k, coefficients: coefficientsOf(m[k])}
	}
	return out
}

// VariableEntry is one key/coefficients pair of the ordered VariableSet
// variant, VariableList.
type VariableEntry struct {
	Key          string
	Coefficients Coefficients
}

// VariableList is the ordered-pairs VariableSet variant: caller order and
// duplicate keys (each its own column) are preserved exactly.
type VariableList []VariableEntry

func (l VariableList) variableEntries() []variableEntry {
	out := make([]variableEntry, len(l))
	for i, e := range l {
		out[i] = variableEntry{key: e.Key, coefficients: coefficientsOf(e.Coefficients)}
	}
	return out
}

func coefficientsOf(c Coefficients) map[string]float64 {
	if c == nil {
		return nil
	}
	return c.coefficientMap()
}

// ConstraintSet is the polymorphic shape of Model.Constraints: either a
// ConstraintMap (unordered, keys sorted lexically at solve time for
// determinism) or a ConstraintList (caller-ordered; first occurrence of a
// repeated key fixes its row position, per Model.Constraints semantics).
type ConstraintSet interface {
	constraintEntries() []constraintEntry
}

type constraintEntry struct {
	key   string
	bound Bound
}

// ConstraintMap is the map-shaped ConstraintSet variant.
type ConstraintMap map[string]Bound

func (m ConstraintMap) constraintEntries() []constraintEntry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]constraintEntry, len(keys))
	for i, k := range keys {
		out[i] = constraintEntry{key: k, bound: m[k]}
	}
	return out
}

// ConstraintEntry is one key/bound pair of the ordered ConstraintSet
// variant, ConstraintList.
type ConstraintEntry struct {
	Key   string
	Bound Bound
}

// ConstraintList is the ordered-pairs ConstraintSet variant.
type ConstraintList []ConstraintEntry

func (l ConstraintList) constraintEntries() []constraintEntry {
	out := make([]constraintEntry, len(l))
	for i, e := range l {
		out[i] = constraintEntry{key: e.Key, bound: e.Bound}
	}
	return out
}

// IntegerSpec is the polymorphic shape of Model.Integers and
// Model.Binaries: AllIntegers/NoIntegers as a blanket shorthand, or an
// explicit IntegerKeys set naming which variable keys it covers.
type IntegerSpec interface {
	includes(key string) bool
}

type allIntegers struct{}

func (allIntegers) includes(string) bool { return true }

// AllIntegers marks every variable in the model as integer (or binary,
// depending on which of Model.Integers/Model.Binaries it is assigned to).
var AllIntegers IntegerSpec = allIntegers{}

type noIntegers struct{}

func (noIntegers) includes(string) bool { return false }

// NoIntegers is the explicit empty IntegerSpec; it is also the behavior
// of a nil Model.Integers/Model.Binaries field.
var NoIntegers IntegerSpec = noIntegers{}

// integerKeySet is the explicit-membership IntegerSpec variant.
type integerKeySet map[string]struct{}

func (s integerKeySet) includes(key string) bool {
	_, ok := s[key]
	return ok
}

// IntegerKeys returns an IntegerSpec covering exactly the given variable
// keys.
func IntegerKeys(keys ...string) IntegerSpec {
	s := make(integerKeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Model is the immutable description of a linear or mixed-integer-linear
// program: an optimization Direction, an Objective key (empty means no
// objective - Solve then only checks feasibility), a ConstraintSet, a
// VariableSet, and which of those variables are required to be Integer
// or Binary.
//
// Binaries implies Integers for the same key; a key present in Binaries
// gets both the integrality requirement and an additional value <= 1
// row, regardless of whether it is also named in Integers.
type Model struct {
	Direction   Direction
	Objective   string
	Constraints ConstraintSet
	Variables   VariableSet
	Integers    IntegerSpec
	Binaries    IntegerSpec
}

func includesKey(spec IntegerSpec, key string) bool {
	if spec == nil {
		return false
	}
	return spec.includes(key)
}
