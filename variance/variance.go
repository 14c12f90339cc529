// SPDX-License-Identifier: MIT

package variance

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// DefaultThreshold is the cumulative share AutoSelectK aims for by default.
const DefaultThreshold = 0.95

// ExplainedRatio returns sum(top k) / sum(all) over eigs sorted descending.
// An empty list, or one whose total is 0, yields 0.
//
// Errors: ErrRange unless 1 ≤ k ≤ len(eigs).
func ExplainedRatio(eigs []float64, k int) (float64, error) {
	if len(eigs) == 0 {
		return 0, nil
	}
	if k < 1 || k > len(eigs) {
		return 0, fmt.Errorf("ExplainedRatio: k=%d not in [1,%d]: %w", k, len(eigs), ErrRange)
	}

	sorted := descending(eigs)
	total := floats.Sum(sorted)
	if total == 0 {
		return 0, nil
	}

	return floats.Sum(sorted[:k]) / total, nil
}

// AutoSelectK returns the smallest count whose cumulative explained ratio
// reaches threshold (≥, first hit wins). If rounding keeps the tail below
// threshold, len(eigs) is returned. Empty input yields 0.
//
// Errors: ErrRange unless 0 < threshold ≤ 1.
func AutoSelectK(eigs []float64, threshold float64) (int, error) {
	if !(threshold > 0 && threshold <= 1) {
		return 0, fmt.Errorf("AutoSelectK: threshold=%v not in (0,1]: %w", threshold, ErrRange)
	}
	if len(eigs) == 0 {
		return 0, nil
	}

	for i, r := range CumulativeRatios(eigs) {
		if r >= threshold {
			return i + 1, nil
		}
	}

	return len(eigs), nil
}

// CumulativeRatios returns r[i] = sum(top i+1) / sum(all) over eigs sorted
// descending. A zero total yields all zeros.
func CumulativeRatios(eigs []float64) []float64 {
	sorted := descending(eigs)
	out := floats.CumSum(make([]float64, len(sorted)), sorted)
	if len(out) == 0 {
		return out
	}

	total := out[len(out)-1]
	if total == 0 {
		clear(out)

		return out
	}
	for i := range out {
		out[i] /= total
	}

	return out
}

func descending(eigs []float64) []float64 {
	out := slices.Clone(eigs)
	slices.SortFunc(out, func(a, b float64) int { return cmp.Compare(b, a) })

	return out
}
