// SPDX-License-Identifier: MIT

// Package variance selects how many principal components to keep.
//
// All functions treat their input as an unordered multiset of eigenvalues:
// they work on a descending-sorted copy and never reorder the caller's slice.
//
//   - ExplainedRatio(eigs, k): share of total eigenvalue mass in the top k.
//   - AutoSelectK(eigs, threshold): smallest k whose cumulative share reaches
//     threshold.
//   - CumulativeRatios(eigs): the whole cumulative curve.
package variance
