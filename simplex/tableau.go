// SPDX-License-Identifier: MIT

// Package simplex - Tableau layout & construction.
//
// Layout (rows = constraints+1, cols = decision+constraints+1):
//
//	          decision block   | slack block (identity) | RHS
//	row 0     a00 ... a0n      | 1 0 ... 0              | b0
//	...
//	row m-1   a(m-1)0 ...      | 0 ... 0 1              | b(m-1)
//	objective -c0 ... -cn      | 0 ... 0                | z
//
// Construction invariants:
//   - every slack column is a unit vector for its own constraint row;
//   - right-hand sides are non-negative, so the all-slack basis is feasible.

package simplex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cargolp/matrix"
)

// Tableau is a dense simplex tableau for a ≤-constrained maximization.
type Tableau struct {
	m           *matrix.Dense
	constraints int   // number of constraint rows
	decision    int   // number of decision columns
	basis       []int // basis[i] = column basic in constraint row i
}

// NewTableau allocates a tableau with the given number of constraint rows and
// decision columns. The slack block is initialised to the identity; every
// other entry is zero. Coefficients, bounds and profits are filled in with
// SetCoefficient, SetRHS and SetProfit.
//
// Errors:
//   - ErrDimensionMismatch when either count is negative.
//
// Complexity: O(rows*cols).
func NewTableau(constraints, decision int) (*Tableau, error) {
	if constraints < 0 || decision < 0 {
		return nil, fmt.Errorf("%w: constraints=%d decision=%d", ErrDimensionMismatch, constraints, decision)
	}
	m, err := matrix.NewDense(constraints+1, decision+constraints+1)
	if err != nil {
		return nil, err
	}
	basis := make([]int, constraints)
	var i int
	for i = 0; i < constraints; i++ {
		if err = m.Set(i, decision+i, 1); err != nil {
			return nil, err
		}
		basis[i] = decision + i
	}

	return &Tableau{m: m, constraints: constraints, decision: decision, basis: basis}, nil
}

// NewStandardForm builds the tableau of
//
//	maximize c·x  subject to  A x ≤ b,  x ≥ 0
//
// with len(c) decision variables and len(b) constraints.
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b) or a row of a has length != len(c).
//   - ErrNegativeRHS when some b[i] < 0.
//   - matrix.ErrNaNInf (wrapped) for non-finite input.
//
// Complexity: O(len(b) * (len(c)+len(b))).
func NewStandardForm(c []float64, a [][]float64, b []float64) (*Tableau, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d coefficient rows, %d bounds", ErrDimensionMismatch, len(a), len(b))
	}
	t, err := NewTableau(len(b), len(c))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = range a {
		if len(a[i]) != len(c) {
			return nil, fmt.Errorf("%w: row %d has %d coefficients, want %d", ErrDimensionMismatch, i, len(a[i]), len(c))
		}
		for j = range a[i] {
			if err = t.SetCoefficient(i, j, a[i][j]); err != nil {
				return nil, err
			}
		}
		if err = t.SetRHS(i, b[i]); err != nil {
			return nil, err
		}
	}
	for j = range c {
		if err = t.SetProfit(j, c[j]); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Rows returns constraints+1.
func (t *Tableau) Rows() int { return t.m.Rows() }

// Cols returns decision+constraints+1.
func (t *Tableau) Cols() int { return t.m.Cols() }

// Constraints returns the number of constraint rows.
func (t *Tableau) Constraints() int { return t.constraints }

// DecisionVars returns the number of decision columns.
func (t *Tableau) DecisionVars() int { return t.decision }

// ObjectiveRow returns the index of the objective row.
func (t *Tableau) ObjectiveRow() int { return t.constraints }

// RHSCol returns the index of the right-hand-side column.
func (t *Tableau) RHSCol() int { return t.decision + t.constraints }

// SlackCol returns the slack column of constraint row i.
func (t *Tableau) SlackCol(i int) int { return t.decision + i }

// SetCoefficient writes a constraint coefficient for decision column col.
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ row < Constraints() and 0 ≤ col < DecisionVars().
//   - matrix.ErrNaNInf (wrapped) for non-finite v.
func (t *Tableau) SetCoefficient(row, col int, v float64) error {
	if row < 0 || row >= t.constraints || col < 0 || col >= t.decision {
		return fmt.Errorf("%w: coefficient (%d,%d)", ErrOutOfRange, row, col)
	}

	return t.m.Set(row, col, v)
}

// SetRHS writes the bound of constraint row.
//
// Errors:
//   - ErrOutOfRange for an invalid row; ErrNegativeRHS when v < 0.
func (t *Tableau) SetRHS(row int, v float64) error {
	if row < 0 || row >= t.constraints {
		return fmt.Errorf("%w: rhs row %d", ErrOutOfRange, row)
	}
	if v < 0 {
		return fmt.Errorf("%w: row %d bound %g", ErrNegativeRHS, row, v)
	}

	return t.m.Set(row, t.RHSCol(), v)
}

// SetProfit stores the per-unit profit of decision column col. The objective
// row holds its negation.
func (t *Tableau) SetProfit(col int, profit float64) error {
	if col < 0 || col >= t.decision {
		return fmt.Errorf("%w: objective column %d", ErrOutOfRange, col)
	}

	return t.m.Set(t.ObjectiveRow(), col, -profit)
}

// At returns the entry at (row, col).
func (t *Tableau) At(row, col int) (float64, error) {
	v, err := t.m.At(row, col)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	return v, nil
}

// Row returns a copy of row i.
func (t *Tableau) Row(i int) ([]float64, error) {
	r, err := t.m.Row(i)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	out := make([]float64, len(r))
	copy(out, r)

	return out, nil
}

// RHS returns the right-hand side of row i (the objective value for the objective row).
func (t *Tableau) RHS(i int) (float64, error) {
	return t.At(i, t.RHSCol())
}

// ReducedCost returns the objective-row entry of column j (decision or slack).
func (t *Tableau) ReducedCost(j int) (float64, error) {
	if j < 0 || j >= t.RHSCol() {
		return 0, fmt.Errorf("%w: column %d", ErrOutOfRange, j)
	}

	return t.At(t.ObjectiveRow(), j)
}

// ObjectiveValue returns the RHS of the objective row.
func (t *Tableau) ObjectiveValue() float64 {
	v, _ := t.m.At(t.ObjectiveRow(), t.RHSCol())

	return v
}

// Feasible reports whether every constraint RHS is ≥ -eps, i.e. the current
// basis describes a feasible point.
func (t *Tableau) Feasible(eps float64) bool {
	var (
		i   int
		v   float64
		rhs = t.RHSCol()
	)
	for i = 0; i < t.constraints; i++ {
		v, _ = t.m.At(i, rhs)
		if v < -eps {
			return false
		}
	}

	return true
}

// Optimal reports whether every objective-row entry left of the RHS is ≥ -eps.
func (t *Tableau) Optimal(eps float64) bool {
	obj, _ := t.m.Row(t.ObjectiveRow())
	var j int
	for j = 0; j < len(obj)-1; j++ {
		if obj[j] < -eps {
			return false
		}
	}

	return true
}

// Basis returns a copy of the basic column of every constraint row.
// At construction row i holds its own slack column.
func (t *Tableau) Basis() []int {
	out := make([]int, len(t.basis))
	copy(out, t.basis)

	return out
}

// BasicRow reports whether column col is basic: exactly one row (objective row
// included) holds 1 within tol and every other row holds 0 within tol. When it
// is, the index of that row is returned. A column with two near-1 entries is
// treated as non-basic. Two identical unit columns both pass this scan; Basis
// is authoritative for which of them is actually in the basis.
//
// Complexity: O(rows).
func (t *Tableau) BasicRow(col int, tol float64) (int, bool) {
	if col < 0 || col >= t.RHSCol() {
		return -1, false
	}
	var (
		i        int
		v        float64
		basicRow = -1
	)
	for i = 0; i < t.Rows(); i++ {
		v, _ = t.m.At(i, col)
		switch {
		case math.Abs(v-1) < tol && i != t.ObjectiveRow():
			if basicRow != -1 {
				return -1, false
			}
			basicRow = i
		case math.Abs(v) > tol:
			return -1, false
		}
	}
	if basicRow == -1 {
		return -1, false
	}

	return basicRow, true
}

// Clone returns a deep copy with independent storage.
func (t *Tableau) Clone() *Tableau {
	basis := make([]int, len(t.basis))
	copy(basis, t.basis)

	return &Tableau{m: t.m.Clone(), constraints: t.constraints, decision: t.decision, basis: basis}
}

// String renders the raw grid for diagnostics.
func (t *Tableau) String() string { return t.m.String() }
