// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by the simplex tableau.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 buffer with bounds-checked accessors
//     (At, Set, Row, SetRow, Col) that return sentinel errors instead of panicking.
//   - In-place elementary row operations (ScaleRow, SubScaledRow), the kernels
//     of Gauss–Jordan pivoting.
//   - Deep copies (Clone) so that independent computations never share storage.
//
// Numeric policy: writes through Set/SetRow reject NaN and ±Inf. Row returns a
// slice that aliases the buffer; it is meant for hot read loops and for the
// row kernels above.
//
// Errors are package sentinels (ErrInvalidDimensions, ErrOutOfRange, ErrNaNInf,
// ErrZeroPivot, ErrDimensionMismatch) wrapped with method and coordinates;
// match them with errors.Is.
package matrix
