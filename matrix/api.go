// SPDX-License-Identifier: MIT
// Package matrix: constructor facades.
//
// Purpose:
//   - Intention-revealing entry points for matrices with neutral contents.
//   - Each facade delegates to NewDense; no kernel logic lives here.

package matrix

// NewZeros returns a zero-initialized rows×cols *Dense.
// Errors: ErrInvalidDimensions on negative dims.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a zero matrix with the shape of m.
// Errors: ErrTypeMismatch if m is nil.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}
