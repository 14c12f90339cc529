// SPDX-License-Identifier: MIT

package eigen

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvpca/matrix"
)

// Pair is one eigenvalue with its unit eigenvector (n×1 column).
// Iterations is the number of power steps spent; Converged reports whether
// the tolerance was met before the cap.
type Pair struct {
	Value      float64
	Vector     *matrix.Dense
	Iterations int
	Converged  bool
}

// SortDescending returns a copy of pairs ordered by Value, largest first.
// Equal values keep their discovery order.
func SortDescending(pairs []Pair) []Pair {
	out := slices.Clone(pairs)
	slices.SortStableFunc(out, func(a, b Pair) int { return cmp.Compare(b.Value, a.Value) })

	return out
}

// valuesOf extracts eigenvalues in pair order.
func valuesOf(pairs []Pair) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = p.Value
	}

	return out
}
