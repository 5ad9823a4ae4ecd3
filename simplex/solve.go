// SPDX-License-Identifier: MIT

// Package simplex - primal simplex driver.
//
// Steps per iteration:
//  1. Entering column: most negative objective-row entry (PivotDantzig) or
//     lowest index with a negative entry (PivotBland). None below -Epsilon
//     means the tableau is optimal.
//  2. Leaving row: minimum rhs/coef over rows with coef > Epsilon; the lowest
//     row index wins on ties. No candidate row means ErrUnbounded.
//  3. Pivot: normalise the leaving row, eliminate the entering column from
//     every other row including the objective row.
//
// Determinism: fixed scan orders and tie-breaks; the same input tableau always
// yields the same pivot sequence and the same Solution.

package simplex

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cargolp/matrix"
)

// noColumn and noRow mark "no candidate" results of the pivot scans.
const (
	noColumn = -1
	noRow    = -1
)

// Solve runs the primal simplex method on a private copy of t and returns the
// optimal decision vector, objective value and final tableau. t itself is
// never modified, so repeated solves never share storage.
//
// Preconditions (not validated): the all-slack basis of t is feasible, i.e.
// t was built by NewTableau/NewStandardForm or a caller honouring the same
// invariants.
//
// Errors:
//   - ErrNilTableau when t is nil.
//   - ErrUnbounded (wrapped with the entering column) when the objective can
//     grow without limit.
//   - ErrDidNotConverge (wrapped with the cap) when the iteration cap is hit.
//
// Complexity: O(iterations * rows * cols) time, O(rows * cols) space.
func Solve(t *Tableau, opts ...Option) (Solution, error) {
	if t == nil {
		return Solution{}, ErrNilTableau
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	work := t.Clone()
	maxIter := cfg.MaxIterations
	if maxIter == 0 {
		maxIter = iterationFactor * (work.Rows() + work.Cols())
	}
	log := cfg.Logger.With(
		slog.Int("rows", work.Rows()),
		slog.Int("cols", work.Cols()),
		slog.String("rule", cfg.Rule.String()),
	)

	var (
		iter             int
		entering, pivRow int
		err              error
	)
	for {
		entering = enteringColumn(work, cfg)
		if entering == noColumn {
			break
		}
		if iter >= maxIter {
			log.Warn("iteration cap reached", slog.Int("iterations", iter))
			return Solution{}, fmt.Errorf("%w: %d pivots", ErrDidNotConverge, maxIter)
		}
		pivRow = leavingRow(work, entering, cfg.Epsilon)
		if pivRow == noRow {
			log.Info("unbounded column", slog.Int("column", entering))
			return Solution{}, fmt.Errorf("%w: column %d has no positive entry", ErrUnbounded, entering)
		}
		if err = pivot(work.m, pivRow, entering); err != nil {
			return Solution{}, err
		}
		work.basis[pivRow] = entering
		iter++

		log.Debug("pivot",
			slog.Int("iteration", iter),
			slog.Int("entering", entering),
			slog.Int("leaving", pivRow),
			slog.Float64("objective", work.ObjectiveValue()),
		)
		if cfg.OnPivot != nil {
			cfg.OnPivot(PivotEvent{
				Iteration: iter,
				Entering:  entering,
				Leaving:   pivRow,
				Objective: work.ObjectiveValue(),
				Tableau:   work.Clone(),
			})
		}
	}

	sol := Solution{
		Values:     extract(work),
		Objective:  work.ObjectiveValue(),
		Tableau:    work,
		Iterations: iter,
	}
	log.Info("optimal", slog.Int("iterations", iter), slog.Float64("objective", sol.Objective))

	return sol, nil
}

// enteringColumn selects the entering column or noColumn when the objective
// row has no entry below -eps. The RHS column is never a candidate.
func enteringColumn(t *Tableau, cfg Options) int {
	n := t.RHSCol()
	if n == 0 {
		return noColumn
	}
	obj, _ := t.m.Row(t.ObjectiveRow())
	obj = obj[:n]

	if cfg.Rule == PivotBland {
		var j int
		for j = 0; j < n; j++ {
			if obj[j] < -cfg.Epsilon {
				return j
			}
		}

		return noColumn
	}

	// MinIdx returns the first index holding the minimum.
	j := floats.MinIdx(obj)
	if obj[j] < -cfg.Epsilon {
		return j
	}

	return noColumn
}

// leavingRow performs the minimum-ratio test on column col over the constraint
// rows. Only strictly smaller ratios replace the incumbent, so the lowest row
// wins ties.
func leavingRow(t *Tableau, col int, eps float64) int {
	var (
		i          int
		coef, rhs  float64
		ratio      float64
		best       = noRow
		bestRatio  = math.Inf(1)
		rhsCol     = t.RHSCol()
		constraint = t.Constraints()
	)
	for i = 0; i < constraint; i++ {
		coef, _ = t.m.At(i, col)
		if coef <= eps {
			continue
		}
		rhs, _ = t.m.At(i, rhsCol)
		ratio = rhs / coef
		if ratio < bestRatio {
			bestRatio = ratio
			best = i
		}
	}

	return best
}

// pivot makes (row, col) the pivot: the row is divided by the pivot element
// and col is eliminated from every other row. The pivot column is then set to
// an exact unit vector so that extraction is not disturbed by rounding noise.
func pivot(m *matrix.Dense, row, col int) error {
	element, err := m.At(row, col)
	if err != nil {
		return err
	}
	if err = m.ScaleRow(row, element); err != nil {
		return err
	}

	var (
		i      int
		factor float64
		r      []float64
	)
	for i = 0; i < m.Rows(); i++ {
		if i == row {
			continue
		}
		r, _ = m.Row(i)
		factor = r[col]
		if err = m.SubScaledRow(i, row, factor); err != nil {
			return err
		}
		r[col] = 0
	}
	r, _ = m.Row(row)
	r[col] = 1

	return nil
}

// extract reads the decision vector from the final tableau: a basic decision
// column takes the RHS of the row it is basic in, every other column is zero.
// The tracked basis is used instead of a unit-vector scan so that duplicate
// columns cannot both claim the same row.
func extract(t *Tableau) []float64 {
	var (
		i      int
		col    int
		values = make([]float64, t.DecisionVars())
		rhsCol = t.RHSCol()
	)
	for i, col = range t.basis {
		if col < t.decision {
			values[col], _ = t.m.At(i, rhsCol)
		}
	}

	return values
}
