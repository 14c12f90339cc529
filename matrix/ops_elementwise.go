// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops (statistics, reconstruction).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Public API uses these via thin wrappers in impl_statistics.go.

package matrix

import "math"

// ewBroadcastCols computes out[i,j] = X[i,j] + sign*vec[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastCols(X Matrix, vec []float64, sign float64, tag string) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(vec, c); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out.validateNaNInf = d.validateNaNInf

	var base int
	for i := 0; i < r; i++ {
		base = i * c // cache the base offset for row i
		for j := 0; j < c; j++ {
			out.data[base+j] = d.data[base+j] + sign*vec[j]
		}
	}

	return out, nil
}

// ewReplaceNaNCols replaces every NaN in column j with fill[j].
// The result keeps the source numeric policy.
// Time: O(r*c). Space: O(r*c).
func ewReplaceNaNCols(d *Dense, fill []float64) *Dense {
	out := &Dense{
		r:              d.r,
		c:              d.c,
		data:           make([]float64, len(d.data)),
		validateNaNInf: d.validateNaNInf,
	}
	var base int
	var v float64
	for i := 0; i < d.r; i++ {
		base = i * d.c
		for j := 0; j < d.c; j++ {
			v = d.data[base+j]
			if math.IsNaN(v) {
				v = fill[j]
			}
			out.data[base+j] = v
		}
	}

	return out
}
