// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvpca/matrix"
)

const (
	opDecompose = "Decompose"
	opValues    = "Values"
	opVectors   = "Vectors"
)

func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("eigen.%s: %w", tag, err)
}

// Decompose returns all n eigenpairs of the square matrix C in discovery order.
//
// Implementation:
//   - Stage 1: Validate C is square and finite; copy it into a flat work buffer.
//   - Stage 2: For each of the n passes, run power iteration from a random unit
//     start and record (λ, b).
//   - Stage 3: Deflate the work buffer with λ·b·bᵗ before the next pass.
//
// C is never mutated. A 0×0 input yields an empty slice.
//
// Errors:
//   - matrix.ErrTypeMismatch if C is nil.
//   - matrix.ErrNonSquare if C is not square.
//   - ErrNumericalFailure on NaN/Inf in C or during iteration.
//
// Complexity: O(n³·iters) time, O(n²) space.
func Decompose(C matrix.Matrix, opts ...Option) ([]Pair, error) {
	if err := matrix.ValidateSquare(C); err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}
	o := gatherOptions(opts...)

	pairs, err := decompose(C, C.Rows(), o)
	if err != nil {
		return nil, eigenErrorf(opDecompose, err)
	}

	return pairs, nil
}

// Values returns the n eigenvalues of C in discovery order.
func Values(C matrix.Matrix, opts ...Option) ([]float64, error) {
	pairs, err := Decompose(C, opts...)
	if err != nil {
		return nil, eigenErrorf(opValues, err)
	}

	return valuesOf(pairs), nil
}

// Vectors returns one unit eigenvector per entry of eigenvalues, in the same
// order. The vectors come from their own deflation pass over C; under the same
// options (same seed) they pair positionally with Values. The eigenvalue
// entries themselves only set the count.
func Vectors(C matrix.Matrix, eigenvalues []float64, opts ...Option) ([]*matrix.Dense, error) {
	if err := matrix.ValidateSquare(C); err != nil {
		return nil, eigenErrorf(opVectors, err)
	}
	o := gatherOptions(opts...)

	pairs, err := decompose(C, len(eigenvalues), o)
	if err != nil {
		return nil, eigenErrorf(opVectors, err)
	}
	out := make([]*matrix.Dense, len(pairs))
	for i, p := range pairs {
		out[i] = p.Vector
	}

	return out, nil
}

// decompose runs count deflation passes over a copy of C.
func decompose(C matrix.Matrix, count int, o Options) ([]Pair, error) {
	n := C.Rows()
	a, err := load(C)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, count)
	if n == 0 {
		return pairs, nil
	}

	for p := 0; p < count; p++ {
		b := make([]float64, n)
		for i := range b {
			b[i] = o.rng.Float64()
		}
		normalize(b)

		value, iters, converged := iterate(a, b, n, o)
		if math.IsNaN(value) || math.IsInf(value, 0) || !finite(b) {
			return nil, ErrNumericalFailure
		}

		// A ← A − λ·b·bᵗ
		for i := 0; i < n; i++ {
			row := a[i*n : (i+1)*n]
			floats.AddScaled(row, -value*b[i], b)
		}

		vec, err := matrix.NewColumn(b)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Value: value, Vector: vec, Iterations: iters, Converged: converged})
	}

	return pairs, nil
}

// iterate refines b in place and returns the Rayleigh quotient bᵗAb.
// If A·b vanishes, b is already a null-space direction: it is kept and λ = 0.
func iterate(a, b []float64, n int, o Options) (value float64, iters int, converged bool) {
	ab := make([]float64, n)
	matVec(ab, a, b, n)

	prev := 0.0
	for iters = 1; iters <= o.maxIter; iters++ {
		if norm := floats.Norm(ab, 2); norm > 0 {
			copy(b, ab)
			floats.Scale(1/norm, b)
		}
		matVec(ab, a, b, n)
		value = floats.Dot(b, ab)

		if math.Abs(value-prev) < o.tol {
			return value, iters, true
		}
		if math.IsNaN(value) {
			return value, iters, false
		}
		prev = value
	}

	return value, o.maxIter, false
}

// load copies C into a row-major buffer and rejects non-finite entries.
func load(C matrix.Matrix) ([]float64, error) {
	n := C.Rows()
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := C.At(i, j)
			if err != nil {
				return nil, err
			}
			a[i*n+j] = v
		}
	}
	if !finite(a) {
		return nil, ErrNumericalFailure
	}

	return a, nil
}

// matVec writes A·x into dst.
func matVec(dst, a, x []float64, n int) {
	for i := 0; i < n; i++ {
		dst[i] = floats.Dot(a[i*n:(i+1)*n], x)
	}
}

// normalize scales v to unit length; a zero vector becomes e₀.
func normalize(v []float64) {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		v[0] = 1

		return
	}
	floats.Scale(1/norm, v)
}

func finite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
