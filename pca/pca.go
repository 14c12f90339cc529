// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpca/eigen"
	"github.com/katalvlaran/lvpca/matrix"
	"github.com/katalvlaran/lvpca/variance"
)

const (
	opFit                 = "Fit"
	opReconstruct         = "Reconstruct"
	opReconstructionError = "ReconstructionError"
)

func pcaErrorf(tag string, err error) error {
	return fmt.Errorf("pca.%s: %w", tag, err)
}

// Result is the outcome of Fit. All matrices are freshly allocated.
type Result struct {
	// Projection is Xc·W, n×K.
	Projection *matrix.Dense
	// Gamma is the explained-variance ratio of the K kept components.
	Gamma float64
	// Components is W, m×K; column j is the j-th principal axis.
	Components *matrix.Dense
	// Means holds the column means subtracted before projection.
	Means []float64
	// Eigenvalues of the covariance matrix, all m of them, descending.
	Eigenvalues []float64
	// K is the number of kept components.
	K int
}

// Fit runs PCA on X (n samples × m features).
//
// Implementation:
//   - Stage 1: Center the columns of X and form C = XcᵗXc / max(n−1, 1).
//   - Stage 2: Decompose C into m eigenpairs and sort them by value, descending.
//   - Stage 3: Resolve k (fixed, or the smallest count reaching the threshold).
//   - Stage 4: Stack the top k eigenvectors into W and project Xc·W.
//
// Errors:
//   - matrix.ErrTypeMismatch if X is nil.
//   - ErrEmptyInput if X has no rows or no columns.
//   - ErrRange if k ∉ [1, m] or threshold ∉ (0, 1].
//   - ErrNumericalFailure if the eigensolver fails or returns too few pairs.
//
// Complexity: O(n·m² + m³·iters) time, O(n·m + m²) space.
func Fit(X matrix.Matrix, opts ...Option) (*Result, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	n, m := X.Rows(), X.Cols()
	if n == 0 || m == 0 {
		return nil, pcaErrorf(opFit, fmt.Errorf("%dx%d: %w", n, m, ErrEmptyInput))
	}
	o := gatherOptions(opts...)
	log := o.log.WithFields(logrus.Fields{"rows": n, "cols": m})

	// Stage 1
	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	C, err := matrix.Covariance(Xc)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	log.Debug("pca: covariance ready")

	// Stage 2
	pairs, err := eigen.Decompose(C, o.eigen...)
	if err != nil {
		if errors.Is(err, eigen.ErrNumericalFailure) {
			return nil, pcaErrorf(opFit, fmt.Errorf("%w: %w", ErrNumericalFailure, err))
		}

		return nil, pcaErrorf(opFit, err)
	}
	if len(pairs) == 0 {
		return nil, pcaErrorf(opFit, fmt.Errorf("no eigenpairs: %w", ErrNumericalFailure))
	}
	iterations := 0
	for i, p := range pairs {
		iterations += p.Iterations
		if !p.Converged {
			log.WithFields(logrus.Fields{"pair": i, "value": p.Value, "iterations": p.Iterations}).
				Warn("pca: eigenpair did not converge")
		}
	}
	pairs = eigen.SortDescending(pairs)
	values := make([]float64, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
	}
	log.WithField("iterations", iterations).Debug("pca: eigen decomposition done")

	// Stage 3
	k := o.k
	if !o.kSet {
		if k, err = variance.AutoSelectK(values, o.threshold); err != nil {
			return nil, pcaErrorf(opFit, fmt.Errorf("%w: %w", ErrRange, err))
		}
	}
	if k < 1 || k > m {
		return nil, pcaErrorf(opFit, fmt.Errorf("k=%d not in [1,%d]: %w", k, m, ErrRange))
	}
	if len(pairs) < k {
		return nil, pcaErrorf(opFit, fmt.Errorf("%d eigenpairs for k=%d: %w", len(pairs), k, ErrNumericalFailure))
	}
	gamma, err := variance.ExplainedRatio(values, k)
	if err != nil {
		return nil, pcaErrorf(opFit, fmt.Errorf("%w: %w", ErrRange, err))
	}

	// Stage 4
	W, err := stackColumns(pairs[:k], m)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	P, err := matrix.Mul(Xc, W)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	log.WithFields(logrus.Fields{"k": k, "gamma": gamma}).Debug("pca: fit complete")

	return &Result{
		Projection:  P,
		Gamma:       gamma,
		Components:  W,
		Means:       means,
		Eigenvalues: values,
		K:           k,
	}, nil
}

// stackColumns builds the m×len(pairs) matrix whose columns are the vectors.
func stackColumns(pairs []eigen.Pair, m int) (*matrix.Dense, error) {
	W, err := matrix.NewDense(m, len(pairs))
	if err != nil {
		return nil, err
	}
	for j, p := range pairs {
		for i := 0; i < m; i++ {
			v, err := p.Vector.At(i, 0)
			if err != nil {
				return nil, err
			}
			if err = W.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return W, nil
}

// Reconstruct maps res back to data space: Projection·Componentsᵗ + Means.
//
// Errors: matrix.ErrTypeMismatch if res or its matrices are nil.
func Reconstruct(res *Result) (*matrix.Dense, error) {
	if res == nil {
		return nil, pcaErrorf(opReconstruct, matrix.ErrTypeMismatch)
	}
	Wt, err := matrix.Transpose(res.Components)
	if err != nil {
		return nil, pcaErrorf(opReconstruct, err)
	}
	Y, err := matrix.Mul(res.Projection, Wt)
	if err != nil {
		return nil, pcaErrorf(opReconstruct, err)
	}
	out, err := matrix.AddColumnVector(Y, res.Means)
	if err != nil {
		return nil, pcaErrorf(opReconstruct, err)
	}

	return out, nil
}

// ReconstructionError returns the mean of squared elementwise differences.
// Identical matrices give exactly 0; empty matrices give 0.
//
// Errors:
//   - matrix.ErrTypeMismatch on nil input.
//   - matrix.ErrShapeMismatch if the shapes differ.
func ReconstructionError(orig, recon matrix.Matrix) (float64, error) {
	if err := matrix.ValidateBinarySameShape(orig, recon); err != nil {
		return 0, pcaErrorf(opReconstructionError, err)
	}
	r, c := orig.Rows(), orig.Cols()
	if r == 0 || c == 0 {
		return 0, nil
	}

	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a, err := orig.At(i, j)
			if err != nil {
				return 0, pcaErrorf(opReconstructionError, err)
			}
			b, err := recon.At(i, j)
			if err != nil {
				return 0, pcaErrorf(opReconstructionError, err)
			}
			d := a - b
			sum += d * d
		}
	}

	return sum / float64(r*c), nil
}
