// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxSetRow   = "SetRow"   // method tag used in error wrappers
	ctxScaleRow = "ScaleRow" // method tag used in error wrappers
	ctxSubRow   = "SubRow"   // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// DefaultValidateNaNInf is the numeric policy applied by NewDense.
const DefaultValidateNaNInf = true

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w so callers can use errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and SetRow.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in writes when true
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and set the default numeric policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom builds a Dense from row slices. All rows must share one length.
// Values are copied; later changes to rows do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when a row length differs from the first.
//   - ErrNaNInf when a value is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var i int
	for i = range rows {
		if err = m.SetRow(i, rows[i]); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values when the policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns the i-th row as a slice sharing the backing buffer.
// Writes through the slice are visible in m and bypass the numeric policy;
// callers that only read should treat it as read-only.
//
// Complexity: O(1), no allocation.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// SetRow copies vals into row i. len(vals) must equal Cols().
// Complexity: O(c).
func (m *Dense) SetRow(i int, vals []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return denseErrorf(ctxSetRow, i, len(vals), ErrDimensionMismatch)
	}
	var j int
	if m.validateNaNInf {
		for j = range vals {
			if math.IsNaN(vals[j]) || math.IsInf(vals[j], 0) {
				return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
			}
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// Col copies column j into a fresh slice of length Rows().
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxAt, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations on the clone never reach the original.
//
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
//
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as "[a, b, c]" lines for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
