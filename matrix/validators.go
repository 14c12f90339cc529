// SPDX-License-Identifier: MIT
// Package matrix: shared argument checks.
//
// Kernels call these before touching data so that every entry point reports
// the same sentinel for the same misuse. Composite checks run nil checks
// before shape checks. None of them allocate.

package matrix

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil interface or nil *Dense with ErrTypeMismatch.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrTypeMismatch)
	}

	return nil
}

// ValidateSameShape reports ErrDimensionMismatch unless a and b have equal
// shapes. Both must be non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape checks both operands for nil, then for equal shape.
func ValidateBinarySameShape(a, b Matrix) error {
	for _, m := range [...]Matrix{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return err
		}
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible checks both operands for nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	for _, m := range [...]Matrix{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return err
		}
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("inner %d vs %d: %w", a.Cols(), b.Rows(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare reports ErrTypeMismatch for nil and ErrNonSquare unless
// Rows == Cols.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateVecLen reports ErrDimensionMismatch unless len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSymmetric requires a square m with |m[i,j] − m[j,i]| ≤ tol above
// the diagonal; otherwise ErrTypeMismatch, ErrNonSquare or ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			upper, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			lower, err := m.At(j, i)
			if err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(upper-lower) > tol {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}
