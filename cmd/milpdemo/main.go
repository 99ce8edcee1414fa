// Command milpdemo solves the furniture-shop scenario used throughout
// this module's tests: maximize profit on tables and dressers subject to
// wood, labor and storage budgets, with both quantities integer.
package main

import (
	"fmt"

	"github.com/arnegrahl/milp"
)

func main() {
	model := milp.Model{
		Direction: milp.Maximize,
		Objective: "profit",
		Constraints: milp.ConstraintMap{
			"wood":    milp.Max(300),
			"labor":   milp.Max(110),
			"storage": milp.Max(400),
		},
		Variables: milp.VariableMap{
			"table":   milp.CoefficientMap{"wood": 30, "labor": 5, "profit": 1200, "storage": 30},
			"dresser": milp.CoefficientMap{"wood": 20, "labor": 10, "profit": 1600, "storage": 50},
		},
		Integers: milp.AllIntegers,
	}

	solution := milp.Solve(model)

	fmt.Printf("status: %s\n", solution.Status)
	fmt.Printf("profit: %.2f\n", solution.Result)
	for _, v := range solution.Variables {
		fmt.Printf("  %s = %.2f\n", v.Key, v.Value)
	}
}
