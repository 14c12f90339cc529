// SPDX-License-Identifier: MIT

// Package eigen computes eigenpairs of a square (typically symmetric
// covariance) matrix by power iteration with successive deflation.
//
// Decompose finds all n eigenpairs in a single deflation pass: each pass
// starts from a pseudo-random unit vector, iterates b ← normalize(A·b) until
// the Rayleigh quotient bᵗAb moves by less than the tolerance (or the
// iteration cap is reached), records the pair, and deflates
// A ← A − λ·b·bᵗ. Values and eigenvectors therefore describe the same mode
// by construction.
//
// Randomness comes from an explicit *rand.Rand (math/rand/v2). By default
// every call seeds a fresh PCG source with DefaultSeed, so results are
// reproducible; use WithSeed or WithRand to change that.
//
// Eigenvalues come out in discovery order (largest magnitude of the
// remaining spectrum first); SortDescending orders pairs by value.
// Vectors past the numerical rank of the input are not meaningful.
package eigen
