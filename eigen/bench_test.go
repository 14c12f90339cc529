// SPDX-License-Identifier: MIT

package eigen_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvpca/eigen"
	"github.com/katalvlaran/lvpca/matrix"
)

func BenchmarkDecompose(b *testing.B) {
	const n, samples = 16, 64
	rng := rand.New(rand.NewPCG(1, 1))
	X, _ := matrix.NewDense(samples, n)
	for i := 0; i < samples; i++ {
		for j := 0; j < n; j++ {
			_ = X.Set(i, j, rng.NormFloat64())
		}
	}
	Xc, _, _ := matrix.CenterColumns(X)
	C, _ := matrix.Covariance(Xc)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eigen.Decompose(C); err != nil {
			b.Fatal(err)
		}
	}
}
