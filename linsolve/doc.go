// SPDX-License-Identifier: MIT

// Package linsolve solves general linear systems A·x = b by Gaussian
// elimination with row pivoting.
//
// Solve reduces the augmented matrix [A|b] to row-echelon form, detects
// inconsistent systems, and back-substitutes. A system of full column rank
// yields a single solution vector; an underdetermined system yields a
// particular solution (all free variables set to 0) plus one null-space
// basis vector per free variable, so every solution is
//
//	x = Particular + Σ t_i · Basis[i],  t_i ∈ ℝ.
//
// All comparisons against zero use an absolute tolerance (DefaultEpsilon,
// 1e-9) configurable with WithEpsilon.
package linsolve
