// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// All exported routines return these sentinels (optionally wrapped with
// coordinates via denseErrorf); tests match them with errors.Is.
// Panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrZeroPivot is returned by ScaleRow when asked to divide by (near) zero.
	ErrZeroPivot = errors.New("matrix: zero divisor in row scaling")

	// ErrDimensionMismatch indicates a slice whose length does not match the
	// row width it is written into.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
