// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations (Gauss–Jordan kernels).
//
// Purpose:
//   - Provide the two in-place row operations every pivoting scheme is built from:
//     scaling a row by 1/divisor and subtracting a multiple of one row from another.
//   - Operate on the flat buffer directly (fast path, no per-element bounds checks).
//
// Determinism:
//   - Fixed left-to-right column order; no allocations.

package matrix

import "math"

// ScaleRow divides every entry of row i by divisor in place.
//
// Errors:
//   - ErrOutOfRange when i is not a valid row.
//   - ErrZeroPivot when divisor is 0, NaN or ±Inf.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) ScaleRow(i int, divisor float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxScaleRow, i, 0, ErrOutOfRange)
	}
	if divisor == 0 || math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return denseErrorf(ctxScaleRow, i, 0, ErrZeroPivot)
	}
	var (
		j    int
		base = i * m.c
	)
	for j = 0; j < m.c; j++ {
		m.data[base+j] /= divisor
	}

	return nil
}

// SubScaledRow performs row[dst] -= factor * row[src] in place.
// A zero factor is a no-op. dst == src is allowed and yields (1-factor)*row.
//
// Errors:
//   - ErrOutOfRange when dst or src is not a valid row.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SubScaledRow(dst, src int, factor float64) error {
	if dst < 0 || dst >= m.r {
		return denseErrorf(ctxSubRow, dst, 0, ErrOutOfRange)
	}
	if src < 0 || src >= m.r {
		return denseErrorf(ctxSubRow, src, 0, ErrOutOfRange)
	}
	if factor == 0 {
		return nil
	}
	var (
		j       int
		dstBase = dst * m.c
		srcBase = src * m.c
	)
	for j = 0; j < m.c; j++ {
		m.data[dstBase+j] -= factor * m.data[srcBase+j]
	}

	return nil
}
