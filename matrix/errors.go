// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
//
// Kernels return these wrapped with an operation tag; match with errors.Is.
// User data never causes a panic.

package matrix

import "errors"

var (
	// ErrInvalidDimensions: a negative row or column count was requested.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange: an index falls outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: operand shapes are incompatible for the operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrTypeMismatch: an operand is a nil interface or a nil *Dense.
	ErrTypeMismatch = errors.New("matrix: operand is not a matrix")

	// ErrNonSquare: the operation needs Rows == Cols.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry: m[i,j] and m[j,i] differ by more than the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf: a non-finite value met the strict numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrFormat: construction rows have differing lengths.
	ErrFormat = errors.New("matrix: malformed input rows")
)

// ErrShapeMismatch names the same condition as ErrDimensionMismatch.
// errors.Is(err, ErrShapeMismatch) holds for every dimension mismatch.
var ErrShapeMismatch = ErrDimensionMismatch

// ErrNilMatrix historically named the nil-operand condition.
// It aliases ErrTypeMismatch to preserve errors.Is behavior.
var ErrNilMatrix = ErrTypeMismatch // Deprecated: use ErrTypeMismatch.
