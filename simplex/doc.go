// SPDX-License-Identifier: MIT

// Package simplex implements the primal simplex method on a dense tableau.
//
// Overview:
//
//   - A Tableau holds a ≤-constrained maximization in standard form: decision
//     columns, an identity block of slack columns, a right-hand-side column and
//     an objective row carrying the negated profits.
//   - Solve pivots until the objective row is non-negative, then reads the
//     decision vector from the unit columns of the final tableau.
//   - The final tableau is returned with the Solution; its objective row holds
//     the reduced costs used for post-optimal sensitivity analysis.
//
// Pivot rules:
//
//   - PivotDantzig (default): most negative reduced cost enters.
//   - PivotBland: lowest-index negative reduced cost enters; cannot cycle.
//
// In both cases the ratio test keeps the lowest row on ties, so output is
// deterministic for a given column and row order. Degenerate problems solved
// with PivotDantzig are protected by an iteration cap (10*(rows+cols) by
// default) that fails with ErrDidNotConverge instead of looping.
//
// Ownership:
//
//   - Solve works on a private clone; the input tableau is never mutated.
//   - Each Solution owns its final tableau, so two solves never alias storage.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrUnbounded:        a negative reduced-cost column has no positive entry.
//   - ErrDidNotConverge:   the iteration cap was reached.
//   - ErrNilTableau:       Solve received nil.
//   - ErrDimensionMismatch, ErrNegativeRHS, ErrOutOfRange: construction errors.
//
// Example:
//
//	// maximize 3x + 2y  s.t.  x + y ≤ 4,  x + 3y ≤ 6
//	t, _ := simplex.NewStandardForm(
//		[]float64{3, 2},
//		[][]float64{{1, 1}, {1, 3}},
//		[]float64{4, 6},
//	)
//	sol, err := simplex.Solve(t)
//	if err != nil {
//		return err
//	}
//	fmt.Println(sol.Objective) // 12
//
// Complexity:
//
//   - Each pivot costs O(rows * cols); the number of pivots is problem dependent.
package simplex
