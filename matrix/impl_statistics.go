// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics the PCA pipeline composes: means,
//     centering, sample covariance, mean restoration and missing-value filling.
//   - Keep tight loops centralized in ew* kernels.
//
// Exposed API:
//   - ColumnMeans(X)           -> means               // Σ_i X[i,j] / r
//   - CenterColumns(X)         -> (Xc, means)         // subtract per-column mean
//   - Covariance(Xc)           -> Cov                 // (Xcᵀ Xc) / max(r-1, 1)
//   - AddColumnVector(X, v)    -> Y                   // Y[i,j] = X[i,j] + v[j]
//   - FillMissing(X)           -> (Y, means)          // NaN -> column mean of present values
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Zero-size matrices are legal: centering returns a zero matrix of the same
//     shape, covariance returns a c×c zero matrix.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnMeans     = "ColumnMeans"
	opCenterColumns   = "CenterColumns"
	opCovariance      = "Covariance"
	opAddColumnVector = "AddColumnVector"
	opFillMissing     = "FillMissing"
)

// ColumnMeans returns the per-column arithmetic means of X (len = X.Cols()).
// For r == 0 every mean is 0.
//
// Errors:
//   - ErrTypeMismatch (nil input).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	means := make([]float64, d.c) // sums first, averages after
	if d.r == 0 {
		return means, nil
	}
	var base int
	for i := 0; i < d.r; i++ {
		base = i * d.c
		for j := 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	for j := range means {
		means[j] /= float64(d.r)
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X; zero-size input yields a fresh zero matrix of the same shape.
//   - Stage 2: Compute column means.
//   - Stage 3: Broadcast-subtract into a fresh copy.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrTypeMismatch from validation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	if X.Rows() == 0 || X.Cols() == 0 {
		z, err := ZerosLike(X)
		if err != nil {
			return nil, nil, matrixErrorf(opCenterColumns, err)
		}
		return z, make([]float64, X.Cols()), nil
	}

	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastCols(X, means, -1, opCenterColumns)
	if err != nil {
		return nil, nil, err
	}

	return Xc, means, nil
}

// Covariance computes C = (Xcᵀ · Xc) / max(r-1, 1) for an already centered Xc.
// Implementation:
//   - Stage 1: Validate; zero-size input yields a c×c zero matrix.
//   - Stage 2: Transpose and multiply via the canonical kernels.
//   - Stage 3: Scale by 1/max(r-1, 1).
//
// Behavior highlights:
//   - A single observation divides by 1, so the result is Xcᵀ·Xc.
//   - Symmetric and positive semi-definite on well-formed data (modulo rounding).
//
// Errors:
//   - ErrTypeMismatch.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(Xc Matrix) (*Dense, error) {
	if err := ValidateNotNil(Xc); err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	r, c := Xc.Rows(), Xc.Cols()
	if r == 0 || c == 0 {
		z, err := NewZeros(c, c)
		if err != nil {
			return nil, matrixErrorf(opCovariance, err)
		}
		return z, nil
	}

	Xt, err := Transpose(Xc)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xt, Xc)
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}
	denom := r - 1
	if denom < 1 {
		denom = 1
	}
	C, err := Scale(G, 1.0/float64(denom))
	if err != nil {
		return nil, matrixErrorf(opCovariance, err)
	}

	return C, nil
}

// AddColumnVector returns Y with Y[i,j] = X[i,j] + v[j] (column-wise broadcast).
// It undoes CenterColumns when v is the returned means.
//
// Errors:
//   - ErrTypeMismatch, ErrDimensionMismatch (len(v) != X.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AddColumnVector(X Matrix, v []float64) (*Dense, error) {
	return ewBroadcastCols(X, v, +1, opAddColumnVector)
}

// FillMissing replaces NaN entries with the mean of the non-NaN entries of
// their column. A column with no present values is filled with 0.
// The input must have been built with WithNoValidateNaNInf to hold NaN.
//
// Returns:
//   - *Dense: filled copy (input untouched).
//   - []float64: per-column means of the present values.
//
// Errors:
//   - ErrTypeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FillMissing(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opFillMissing, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opFillMissing, err)
	}

	means := make([]float64, d.c)
	counts := make([]int, d.c)
	var v float64
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v = d.data[i*d.c+j]
			if math.IsNaN(v) {
				continue // missing
			}
			means[j] += v
			counts[j]++
		}
	}
	for j := range means {
		if counts[j] > 0 {
			means[j] /= float64(counts[j])
		}
	}

	return ewReplaceNaNCols(d, means), means, nil
}
