// SPDX-License-Identifier: MIT

// Package pca runs Principal Component Analysis on a dense data matrix.
//
// Fit composes the lower packages in a fixed order:
//
//	X ─center→ Xc ─covariance→ C ─eigen.Decompose→ pairs ─sort, top k→ W
//	projection = Xc · W
//
// k is either fixed with WithK or chosen by variance.AutoSelectK against the
// threshold (WithThreshold, default 0.95). The component basis W has unit
// columns that are orthogonal only up to the eigensolver's tolerance.
//
// Reconstruct maps a projection back to data space (P·Wᵗ + means) and
// ReconstructionError measures the mean squared difference to the original.
//
// Fit is deterministic for a fixed seed. It never writes to stdout; pass a
// logrus.FieldLogger with WithLogger to observe the stages.
package pca
