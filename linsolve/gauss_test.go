// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpca/linsolve"
	"github.com/katalvlaran/lvpca/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireSolves asserts A·x ≈ b within delta.
func requireSolves(t *testing.T, A, x, b matrix.Matrix, delta float64) {
	t.Helper()
	Ax, err := matrix.Mul(A, x)
	require.NoError(t, err)
	ok, err := matrix.EqualApprox(Ax, b, delta)
	require.NoError(t, err)
	require.True(t, ok, "A·x = %v, want %v", Ax, b)
}

func TestSolve_Identity(t *testing.T) {
	A := dense(t, [][]float64{{1, 0}, {0, 1}})
	b := dense(t, [][]float64{{3}, {5}})

	sol, err := linsolve.Solve(A, b)
	require.NoError(t, err)
	require.True(t, sol.Unique())
	require.Len(t, sol.Vectors(), 1)
	require.Equal(t, [][]float64{{3}, {5}}, sol.Particular.ToRows())
	require.Equal(t, 2, sol.Rank)
}

func TestSolve_RequiresRowSwap(t *testing.T) {
	A := dense(t, [][]float64{{0, 2, 1}, {1, 1, 0}, {2, 0, 3}})
	b := dense(t, [][]float64{{5}, {3}, {11}})

	sol, err := linsolve.Solve(A, b)
	require.NoError(t, err)
	require.True(t, sol.Unique())
	requireSolves(t, A, sol.Particular, b, 1e-9)
}

func TestSolve_Underdetermined(t *testing.T) {
	A := dense(t, [][]float64{{1, 1}})
	b := dense(t, [][]float64{{2}})

	sol, err := linsolve.Solve(A, b)
	require.NoError(t, err)
	require.False(t, sol.Unique())
	require.Len(t, sol.Basis, 1)
	require.Equal(t, []int{1}, sol.FreeColumns)
	require.Equal(t, [][]float64{{2}, {0}}, sol.Particular.ToRows())
	require.Equal(t, [][]float64{{-1}, {1}}, sol.Basis[0].ToRows())

	for _, tv := range []float64{-3.5, 0, 1, 2, 1e3} {
		x, err := sol.At(tv)
		require.NoError(t, err)
		requireSolves(t, A, x, b, 1e-9)
	}

	_, err = sol.At()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_RankDeficientSquare(t *testing.T) {
	// Third row = first + second; column 2 becomes free.
	A := dense(t, [][]float64{{1, 2, 3}, {0, 1, 1}, {1, 3, 4}})
	b := dense(t, [][]float64{{6}, {2}, {8}})

	sol, err := linsolve.Solve(A, b)
	require.NoError(t, err)
	require.Equal(t, 2, sol.Rank)
	require.Equal(t, []int{0, 1}, sol.PivotColumns)
	require.Equal(t, []int{2}, sol.FreeColumns)
	requireSolves(t, A, sol.Particular, b, 1e-9)

	zero := dense(t, [][]float64{{0}, {0}, {0}})
	requireSolves(t, A, sol.Basis[0], zero, 1e-9)
	assert.Equal(t, 1.0, sol.Basis[0].ToRows()[2][0])
}

func TestSolve_FreeColumnsAscending(t *testing.T) {
	// Column 0 has no pivot, column 2 has no pivot.
	A := dense(t, [][]float64{{0, 1, 0, 2}, {0, 0, 0, 1}})
	b := dense(t, [][]float64{{4}, {1}})

	sol, err := linsolve.Solve(A, b)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, sol.FreeColumns)
	require.Len(t, sol.Basis, 2)
	require.Equal(t, 1.0, sol.Basis[0].ToRows()[0][0])
	require.Equal(t, 1.0, sol.Basis[1].ToRows()[2][0])

	x, err := sol.At(3, -7)
	require.NoError(t, err)
	requireSolves(t, A, x, b, 1e-9)
}

func TestSolve_OverdeterminedConsistent(t *testing.T) {
	A := dense(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})
	b := dense(t, [][]float64{{1}, {2}, {3}})

	sol, err := linsolve.Solve(A, b)
	require.NoError(t, err)
	require.True(t, sol.Unique())
	require.InDeltaSlice(t, []float64{1, 2}, flatten(sol.Particular), 1e-12)
}

func TestSolve_Inconsistent(t *testing.T) {
	A := dense(t, [][]float64{{1, 0}, {0, 0}})
	b := dense(t, [][]float64{{0}, {1}})

	_, err := linsolve.Solve(A, b)
	require.ErrorIs(t, err, linsolve.ErrInconsistent)
}

func TestSolve_ShapeAndTypeErrors(t *testing.T) {
	A := dense(t, [][]float64{{1, 0}, {0, 1}})

	_, err := linsolve.Solve(A, dense(t, [][]float64{{1}, {2}, {3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = linsolve.Solve(A, dense(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = linsolve.Solve(nil, dense(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrTypeMismatch)
	_, err = linsolve.Solve(A, nil)
	require.ErrorIs(t, err, matrix.ErrTypeMismatch)
}

func TestSolve_EpsilonOption(t *testing.T) {
	// With a loose tolerance the tiny second pivot is treated as zero.
	A := dense(t, [][]float64{{1, 0}, {0, 1e-6}})
	b := dense(t, [][]float64{{1}, {0}})

	sol, err := linsolve.Solve(A, b, linsolve.WithEpsilon(1e-3))
	require.NoError(t, err)
	require.Equal(t, 1, sol.Rank)

	sol, err = linsolve.Solve(A, b)
	require.NoError(t, err)
	require.Equal(t, 2, sol.Rank)

	require.Panics(t, func() { linsolve.WithEpsilon(-1) })
}

func TestSolve_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 10; trial++ {
		const n = 5
		rows := make([][]float64, n)
		flat := make([]float64, 0, n*n)
		rhs := make([]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = 2*rng.Float64() - 1
			}
			rows[i][i] += n // diagonally dominant, well conditioned
			flat = append(flat, rows[i]...)
			rhs[i] = 10*rng.Float64() - 5
		}
		A := dense(t, rows)
		b, err := matrix.NewColumn(rhs)
		require.NoError(t, err)

		sol, err := linsolve.Solve(A, b)
		require.NoError(t, err)
		require.True(t, sol.Unique())

		var want mat.VecDense
		require.NoError(t, want.SolveVec(mat.NewDense(n, n, flat), mat.NewVecDense(n, rhs)))
		require.InDeltaSlice(t, want.RawVector().Data, flatten(sol.Particular), 1e-9)
	}
}

func flatten(col *matrix.Dense) []float64 {
	out, _ := matrix.Transpose(col)
	row, _ := out.Row(0)

	return row
}
