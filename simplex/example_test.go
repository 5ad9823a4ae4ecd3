// SPDX-License-Identifier: MIT

// Package simplex_test provides runnable examples for the simplex package.
package simplex_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cargolp/simplex"
)

// ExampleSolve maximizes 3x + 2y subject to x + y ≤ 4 and x + 3y ≤ 6.
func ExampleSolve() {
	t, err := simplex.NewStandardForm(
		[]float64{3, 2},
		[][]float64{{1, 1}, {1, 3}},
		[]float64{4, 6},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sol, err := simplex.Solve(t)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x=%.0f y=%.0f objective=%.0f reduced(y)=%.0f\n",
		sol.Values[0], sol.Values[1], sol.Objective, sol.ReducedCost(1))
	// Output: x=4 y=0 objective=12 reduced(y)=1
}

// ExampleSolve_unbounded shows the sentinel returned when nothing bounds a column.
func ExampleSolve_unbounded() {
	t, _ := simplex.NewStandardForm([]float64{1}, [][]float64{{-1}}, []float64{5})

	_, err := simplex.Solve(t)
	fmt.Println(errors.Is(err, simplex.ErrUnbounded))
	// Output: true
}

// ExampleWithOnPivot traces every pivot of a two-step solve.
func ExampleWithOnPivot() {
	t, _ := simplex.NewStandardForm(
		[]float64{3, 4},
		[][]float64{{1, 0}, {0, 1}, {1, 2}},
		[]float64{120, 50, 100},
	)

	_, _ = simplex.Solve(t, simplex.WithOnPivot(func(ev simplex.PivotEvent) {
		fmt.Printf("pivot %d: column %d enters at row %d, objective %.0f\n",
			ev.Iteration, ev.Entering, ev.Leaving, ev.Objective)
	}))
	// Output:
	// pivot 1: column 1 enters at row 1, objective 200
	// pivot 2: column 0 enters at row 2, objective 200
	// pivot 3: column 3 enters at row 1, objective 300
}
