// SPDX-License-Identifier: MIT

// Package matrix provides a small dense linear-algebra core for the
// lvpca pipeline.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with error-returning accessors.
//   - Canonical kernels: Add, Sub, Mul, Transpose, Scale, MatVec, Trace.
//   - Approximate equality (Equal, EqualApprox) with an absolute tolerance.
//   - Column statistics used by PCA: ColumnMeans, CenterColumns, Covariance,
//     AddColumnVector and FillMissing.
//
// Every operation allocates a fresh result; inputs are never aliased or
// mutated. Empty matrices (0×N or N×0) are valid and inert: arithmetic on
// them yields empty results of the appropriate shape.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrTypeMismatch, ...)
// wrapped with an operation tag; match them with errors.Is.
package matrix
