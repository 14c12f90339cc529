// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view every kernel accepts. *Dense is the only
// implementation in this module; kernels walk its buffer directly and fall
// back to At for anything else.
type Matrix interface {
	Rows() int
	Cols() int

	// At reads element (i, j); ErrOutOfRange outside the shape.
	At(i, j int) (float64, error)

	// Set writes element (i, j); ErrOutOfRange outside the shape, ErrNaNInf
	// when the implementation enforces finite values.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

// isNil reports whether m is a nil interface or wraps a nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}
