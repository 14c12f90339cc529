// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels over any Matrix.
//
// Each kernel validates its operands, allocates a fresh *Dense and never
// writes to its inputs. Two *Dense operands are walked as flat slices; other
// implementations go through At in the same i→j order, so both paths give
// bit-identical results.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for accumulations.
const ZeroSum = 0.0

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
	opEqual     = "Equal"
)

// matrixErrorf tags err with the operation name. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrTypeMismatch (nil operand), ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrTypeMismatch (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrTypeMismatch (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For each output row i iterate the contraction index k and skip
//     the inner j loop when A[i,k] is exactly zero.
//
// Behavior highlights:
//   - The zero-skip only triggers on exact zeros, so results are identical
//     to the plain triple loop.
//
// Errors:
//   - ErrTypeMismatch (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // exact zero contributes nothing
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ),
// result[j][i] = m[i][j]. The original matrix is never mutated.
//
// Errors:
//   - ErrTypeMismatch (nil input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrTypeMismatch (nil input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range src.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x given as a slice.
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var s float64
	var base int
	for i := 0; i < d.r; i++ {
		s = ZeroSum
		base = i * d.c
		for j := 0; j < d.c; j++ {
			s += d.data[base+j] * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
// Errors: ErrTypeMismatch, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	s := ZeroSum
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		s += v
	}

	return s, nil
}

// Equal reports whether a and b have the same shape and every pair of
// elements differs by at most the resolved epsilon (DefaultEpsilon = 1e-9
// unless overridden with WithEpsilon).
//
// Behavior highlights:
//   - Shape mismatch or a nil operand yields false, never an error.
//   - NaN never equals anything, including NaN.
//
// Complexity:
//   - Time O(r*c), Space O(1) on *Dense operands.
func Equal(a, b Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	ok, err := EqualApprox(a, b, o.eps)

	return err == nil && ok
}

// EqualApprox is Equal with an explicit absolute tolerance.
// Returns (false, nil) for a shape mismatch and a wrapped ErrTypeMismatch
// for nil operands; At errors from foreign implementations are propagated.
func EqualApprox(a, b Matrix, eps float64) (bool, error) {
	if isNil(a) || isNil(b) {
		return false, matrixErrorf(opEqual, ErrTypeMismatch)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for idx := range da.data {
		// written as !(<=) so NaN compares unequal
		if !(math.Abs(da.data[idx]-db.data[idx]) <= eps) {
			return false, nil
		}
	}

	return true, nil
}
