// SPDX-License-Identifier: MIT

package eigen_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpca/eigen"
	"github.com/katalvlaran/lvpca/matrix"
)

const tight = 1e-12

// spectral builds H·diag(vals)·H with the Householder reflector
// H = I − 2vvᵗ/(vᵗv), so the eigenvalues are exactly vals.
func spectral(t *testing.T, vals, v []float64) *matrix.Dense {
	t.Helper()
	n := len(vals)
	require.Len(t, v, n)
	vv := floats.Dot(v, v)

	H, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	D, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, D.Set(i, i, vals[i]))
		for j := 0; j < n; j++ {
			h := -2 * v[i] * v[j] / vv
			if i == j {
				h++
			}
			require.NoError(t, H.Set(i, j, h))
		}
	}
	HD, err := matrix.Mul(H, D)
	require.NoError(t, err)
	C, err := matrix.Mul(HD, H)
	require.NoError(t, err)

	return C
}

func fromRows(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

func column(t *testing.T, v *matrix.Dense) []float64 {
	t.Helper()
	c, err := v.Col(0)
	require.NoError(t, err)

	return c
}

func TestDecompose_KnownSpectrum(t *testing.T) {
	C := spectral(t, []float64{8, 4, 2, 1}, []float64{1, 2, 3, 4})

	pairs, err := eigen.Decompose(C, eigen.WithTolerance(tight))
	require.NoError(t, err)
	require.Len(t, pairs, 4)

	for i, want := range []float64{8, 4, 2, 1} {
		assert.InDelta(t, want, pairs[i].Value, 1e-9, "pair %d", i)
		assert.True(t, pairs[i].Converged)
		assert.Positive(t, pairs[i].Iterations)

		v := column(t, pairs[i].Vector)
		assert.InDelta(t, 1.0, floats.Norm(v, 2), 1e-12)

		// C·v ≈ λ·v
		cv, err := matrix.MatVec(C, v)
		require.NoError(t, err)
		floats.AddScaled(cv, -pairs[i].Value, v)
		assert.Less(t, floats.Norm(cv, 2), 1e-4, "residual of pair %d", i)
	}
}

func TestDecompose_MatchesGonumEigenSym(t *testing.T) {
	vals := []float64{10, 5, 2, 1, 0.5}
	C := spectral(t, vals, []float64{0.3, -1, 2, 0.7, 1.1})

	pairs, err := eigen.Decompose(C, eigen.WithTolerance(tight))
	require.NoError(t, err)
	pairs = eigen.SortDescending(pairs)

	n := C.Rows()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := C.At(i, j)
			require.NoError(t, err)
			sym.SetSym(i, j, v)
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, true))
	want := es.Values(nil) // ascending
	var Q mat.Dense
	es.VectorsTo(&Q)

	for i := 0; i < n; i++ {
		j := n - 1 - i
		assert.InDelta(t, want[j], pairs[i].Value, 1e-8, "eigenvalue %d", i)

		got := column(t, pairs[i].Vector)
		ref := mat.Col(nil, j, &Q)
		assert.InDelta(t, 1.0, math.Abs(floats.Dot(got, ref)), 1e-6, "eigenvector %d", i)
	}
}

func TestDecompose_TraceAndSemiDefinite(t *testing.T) {
	C := spectral(t, []float64{8, 4, 0, 0}, []float64{2, -1, 1, 3})

	vals, err := eigen.Values(C)
	require.NoError(t, err)
	require.Len(t, vals, 4)

	tr, err := matrix.Trace(C)
	require.NoError(t, err)
	assert.InDelta(t, tr, floats.Sum(vals), 1e-3)
	for i, v := range vals {
		assert.GreaterOrEqual(t, v, -1e-4, "eigenvalue %d", i)
	}
}

func TestDecompose_NegativeDominant(t *testing.T) {
	C := fromRows(t, [][]float64{{-3, 0}, {0, 1}})

	vals, err := eigen.Values(C, eigen.WithTolerance(tight))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.InDelta(t, -3.0, vals[0], 1e-9)
	assert.InDelta(t, 1.0, vals[1], 1e-9)
}

func TestDecompose_ZeroMatrix(t *testing.T) {
	C, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	pairs, err := eigen.Decompose(C)
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	for _, p := range pairs {
		assert.Equal(t, 0.0, p.Value)
		assert.True(t, p.Converged)
		assert.Equal(t, 1, p.Iterations)
		assert.InDelta(t, 1.0, floats.Norm(column(t, p.Vector), 2), 1e-12)
	}
}

func TestDecompose_Empty(t *testing.T) {
	C, err := matrix.NewDense(0, 0)
	require.NoError(t, err)

	pairs, err := eigen.Decompose(C)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestDecompose_Errors(t *testing.T) {
	_, err := eigen.Decompose(nil)
	assert.ErrorIs(t, err, matrix.ErrTypeMismatch)

	_, err = eigen.Decompose(fromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	bad := fromRows(t, [][]float64{{1, math.NaN()}, {0, 1}}, matrix.WithNoValidateNaNInf())
	_, err = eigen.Decompose(bad)
	assert.ErrorIs(t, err, eigen.ErrNumericalFailure)

	_, err = eigen.Vectors(bad, []float64{1})
	assert.ErrorIs(t, err, eigen.ErrNumericalFailure)
}

func TestDecompose_Deterministic(t *testing.T) {
	C := spectral(t, []float64{6, 3, 1}, []float64{1, 1, 2})

	a, err := eigen.Decompose(C)
	require.NoError(t, err)
	b, err := eigen.Decompose(C)
	require.NoError(t, err)
	for i := range a {
		assert.Equal(t, a[i].Value, b[i].Value)
		assert.True(t, matrix.Equal(a[i].Vector, b[i].Vector))
	}

	// A different seed changes the path, not the answer.
	c, err := eigen.Decompose(C, eigen.WithSeed(42), eigen.WithTolerance(tight))
	require.NoError(t, err)
	for i, want := range []float64{6, 3, 1} {
		assert.InDelta(t, want, c[i].Value, 1e-9)
	}
}

func TestValuesVectors_PairPositionally(t *testing.T) {
	C := spectral(t, []float64{9, 4, 1}, []float64{3, 1, -2})

	pairs, err := eigen.Decompose(C, eigen.WithSeed(7))
	require.NoError(t, err)
	vals, err := eigen.Values(C, eigen.WithSeed(7))
	require.NoError(t, err)
	vecs, err := eigen.Vectors(C, vals, eigen.WithSeed(7))
	require.NoError(t, err)

	require.Len(t, vecs, len(pairs))
	for i := range pairs {
		assert.Equal(t, pairs[i].Value, vals[i])
		assert.True(t, matrix.Equal(pairs[i].Vector, vecs[i]), "vector %d", i)
	}

	// The eigenvalue list only sets the count.
	two, err := eigen.Vectors(C, []float64{0, 0}, eigen.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.True(t, matrix.Equal(pairs[0].Vector, two[0]))
}

func TestWithRand_SharedGenerator(t *testing.T) {
	C := spectral(t, []float64{5, 2}, []float64{1, -1})
	rng := rand.New(rand.NewPCG(3, 3))

	vals, err := eigen.Values(C, eigen.WithRand(rng), eigen.WithTolerance(tight))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, vals[0], 1e-9)
	assert.InDelta(t, 2.0, vals[1], 1e-9)
}

func TestWithMaxIterations_Unconverged(t *testing.T) {
	C := spectral(t, []float64{8, 4, 2, 1}, []float64{1, 2, 3, 4})

	pairs, err := eigen.Decompose(C, eigen.WithMaxIterations(1), eigen.WithTolerance(tight))
	require.NoError(t, err)
	for _, p := range pairs {
		assert.False(t, p.Converged)
		assert.Equal(t, 1, p.Iterations)
	}
}

func TestSortDescending_Stable(t *testing.T) {
	in := []eigen.Pair{
		{Value: 1, Iterations: 0},
		{Value: 3, Iterations: 1},
		{Value: 2, Iterations: 2},
		{Value: 3, Iterations: 3},
	}
	out := eigen.SortDescending(in)

	got := make([]int, len(out))
	for i, p := range out {
		got[i] = p.Iterations
	}
	assert.Equal(t, []int{1, 3, 2, 0}, got)
	assert.Equal(t, 1.0, in[0].Value, "input untouched")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { eigen.WithTolerance(0) })
	assert.Panics(t, func() { eigen.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { eigen.WithMaxIterations(0) })
	assert.Panics(t, func() { eigen.WithRand(nil) })
}
