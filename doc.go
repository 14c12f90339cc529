// Package lvpca is Principal Component Analysis built from first principles:
// a dense matrix type, its own eigensolver and a Gaussian-elimination solver,
// composed into a deterministic PCA pipeline.
//
// What is inside?
//
//   - matrix/   : Dense matrices, arithmetic kernels, centering & covariance
//   - linsolve/ : Gaussian elimination with free variables & null-space basis
//   - eigen/    : power iteration + deflation, eigenpairs from one pass
//   - variance/ : explained-variance ratio & automatic k selection
//   - pca/      : Fit, Reconstruct, ReconstructionError
//   - cmd/lvpca : CLI over CSV input with YAML reports
//
// Quick start:
//
//	X, _ := matrix.NewDenseFromRows(rows)
//	res, err := pca.Fit(X, pca.WithThreshold(0.95), pca.WithSeed(42))
//	if err != nil { … }
//	fmt.Println(res.K, res.Gamma)
//
// Every numeric package is pure Go, allocates fresh results and reports
// failures through sentinel errors matched with errors.Is.
//
//	go get github.com/katalvlaran/lvpca
package lvpca
