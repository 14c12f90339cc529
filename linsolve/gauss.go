// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpca/matrix"
)

const opSolve = "Solve"

// Solution is the solution set of A·x = b.
type Solution struct {
	// Particular solves A·x = b with every free variable set to 0 (m×1).
	Particular *matrix.Dense
	// Basis spans the null space of A: one m×1 vector per free variable,
	// ordered by ascending free column index. Empty for a unique solution.
	Basis []*matrix.Dense
	// Rank is the number of pivot columns found during elimination.
	Rank int
	// PivotColumns lists the pivot column of each echelon row.
	PivotColumns []int
	// FreeColumns lists the columns without a pivot, ascending.
	FreeColumns []int
}

// Unique reports whether the system has exactly one solution.
func (s *Solution) Unique() bool { return len(s.Basis) == 0 }

// Vectors returns the particular solution followed by the basis vectors.
func (s *Solution) Vectors() []*matrix.Dense {
	out := make([]*matrix.Dense, 0, 1+len(s.Basis))
	out = append(out, s.Particular)

	return append(out, s.Basis...)
}

// At evaluates Particular + Σ t[i]·Basis[i].
// Errors: matrix.ErrDimensionMismatch when len(t) != len(Basis).
func (s *Solution) At(t ...float64) (*matrix.Dense, error) {
	if len(t) != len(s.Basis) {
		return nil, fmt.Errorf("Solution.At: %d coefficients for %d basis vectors: %w",
			len(t), len(s.Basis), matrix.ErrDimensionMismatch)
	}
	x := s.Particular.Clone()
	for i, ti := range t {
		scaled, err := matrix.Scale(s.Basis[i], ti)
		if err != nil {
			return nil, fmt.Errorf("Solution.At: %w", err)
		}
		sum, err := matrix.Add(x, scaled)
		if err != nil {
			return nil, fmt.Errorf("Solution.At: %w", err)
		}
		x = sum
	}

	return x.(*matrix.Dense), nil
}

// Solve solves A·x = b for an n×m coefficient matrix A and an n×1 column b.
//
// Implementation:
//   - Stage 1: validate operands and build the augmented rows [A|b].
//   - Stage 2: forward elimination column by column. The pivot is the first
//     row at or below the current pivot row whose entry exceeds eps; a column
//     without one is free and the pivot row does not advance. The pivot row
//     is normalized and the column eliminated from every row below.
//   - Stage 3: rows past the rank reading 0 = c (|c| > eps) ⇒ ErrInconsistent.
//   - Stage 4: back-substitution for the particular solution and, when
//     rank < m, for one homogeneous vector per free column.
//
// Errors:
//   - matrix.ErrTypeMismatch (nil operand), matrix.ErrDimensionMismatch
//     (b is not n×1), ErrInconsistent.
//
// Complexity:
//   - Time O(n·m·min(n,m) + f·rank·m) for f free columns, Space O(n·m).
func Solve(A, b matrix.Matrix, opts ...Option) (*Solution, error) {
	if err := matrix.ValidateNotNil(A); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	n, m := A.Rows(), A.Cols()
	if b.Rows() != n || b.Cols() != 1 {
		return nil, fmt.Errorf("%s: b is %dx%d, want %dx1: %w",
			opSolve, b.Rows(), b.Cols(), n, matrix.ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	aug, err := augment(A, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	pivots := forwardEliminate(aug, m, o.eps)
	rank := len(pivots)

	// Every row past the rank has ~0 coefficients; a non-zero right-hand
	// side there means 0 = c.
	for i := rank; i < n; i++ {
		if rowIsZero(aug[i][:m], o.eps) && math.Abs(aug[i][m]) > o.eps {
			return nil, fmt.Errorf("%s: row %d: %w", opSolve, i, ErrInconsistent)
		}
	}

	free := freeColumns(pivots, m)
	sol := &Solution{
		Rank:         rank,
		PivotColumns: pivots,
		FreeColumns:  free,
	}

	x := make([]float64, m)
	backSubstitute(aug, pivots, x, true, o.eps)
	if sol.Particular, err = matrix.NewColumn(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	sol.Basis = make([]*matrix.Dense, 0, len(free))
	for _, f := range free {
		h := make([]float64, m)
		h[f] = 1
		backSubstitute(aug, pivots, h, false, o.eps)
		v, err := matrix.NewColumn(h)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, err)
		}
		sol.Basis = append(sol.Basis, v)
	}

	return sol, nil
}

// augment copies A and b into n rows of length m+1.
func augment(A, b matrix.Matrix) ([][]float64, error) {
	n, m := A.Rows(), A.Cols()
	aug := make([][]float64, n)
	var err error
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, m+1)
		for j := 0; j < m; j++ {
			if aug[i][j], err = A.At(i, j); err != nil {
				return nil, err
			}
		}
		if aug[i][m], err = b.At(i, 0); err != nil {
			return nil, err
		}
	}

	return aug, nil
}

// forwardEliminate reduces aug (n rows, m coefficient columns + rhs) to
// row-echelon form in place and returns the pivot column of each echelon row.
func forwardEliminate(aug [][]float64, m int, eps float64) []int {
	n := len(aug)
	pivots := make([]int, 0, min(n, m))
	row := 0
	var (
		p, i, j       int
		pivot, factor float64
	)
	for col := 0; col < m && row < n; col++ {
		p = row
		for p < n && math.Abs(aug[p][col]) <= eps {
			p++
		}
		if p == n {
			continue // no pivot: free column
		}
		aug[row], aug[p] = aug[p], aug[row]
		pivots = append(pivots, col)

		pivot = aug[row][col]
		for j = col; j <= m; j++ {
			aug[row][j] /= pivot
		}
		for i = row + 1; i < n; i++ {
			factor = aug[i][col]
			if math.Abs(factor) <= eps {
				continue
			}
			for j = col; j <= m; j++ {
				aug[i][j] -= factor * aug[row][j]
			}
		}
		row++
	}

	return pivots
}

// backSubstitute fills the pivot entries of x from the last echelon row
// upward. Free entries of x are read as given. When withRHS is false the
// right-hand side is treated as zero (homogeneous system).
func backSubstitute(aug [][]float64, pivots []int, x []float64, withRHS bool, eps float64) {
	m := len(x)
	var j int
	var s, d float64
	for r := len(pivots) - 1; r >= 0; r-- {
		j = pivots[r]
		s = 0
		if withRHS {
			s = aug[r][m]
		}
		for k := j + 1; k < m; k++ {
			s -= aug[r][k] * x[k]
		}
		d = aug[r][j]
		if math.Abs(d) <= eps {
			d = 1 // unreachable under the pivot rule
		}
		x[j] = s / d
	}
}

func rowIsZero(row []float64, eps float64) bool {
	for _, v := range row {
		if math.Abs(v) > eps {
			return false
		}
	}

	return true
}

func freeColumns(pivots []int, m int) []int {
	isPivot := make([]bool, m)
	for _, c := range pivots {
		isPivot[c] = true
	}
	free := make([]int, 0, m-len(pivots))
	for c := 0; c < m; c++ {
		if !isPivot[c] {
			free = append(free, c)
		}
	}

	return free
}
