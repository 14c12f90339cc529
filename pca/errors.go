// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpca/eigen"
	"github.com/katalvlaran/lvpca/variance"
)

var (
	// ErrEmptyInput is returned when X has zero rows or zero columns.
	ErrEmptyInput = errors.New("pca: empty input")

	// ErrRange is returned for k or threshold outside their valid range.
	// errors.Is(err, variance.ErrRange) also holds.
	ErrRange = fmt.Errorf("pca: %w", variance.ErrRange)

	// ErrNumericalFailure is returned when the eigensolver cannot deliver the
	// required eigenpairs. errors.Is(err, eigen.ErrNumericalFailure) also holds.
	ErrNumericalFailure = fmt.Errorf("pca: %w", eigen.ErrNumericalFailure)
)
