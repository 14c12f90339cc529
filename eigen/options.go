// SPDX-License-Identifier: MIT

package eigen

import (
	"math"
	"math/rand/v2"
)

// Defaults (single source of truth).
const (
	// DefaultTolerance stops an iteration once |λ_new − λ_old| < tol.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps power-iteration steps per eigenpair.
	DefaultMaxIterations = 1000

	// DefaultSeed seeds the PCG source used when no generator is supplied.
	DefaultSeed uint64 = 1
)

const (
	panicToleranceInvalid = "eigen: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "eigen: WithMaxIterations: n must be > 0"
	panicRandNil          = "eigen: WithRand: generator must not be nil"
)

// Option configures the eigensolver.
type Option func(*Options)

// Options holds the resolved solver configuration.
type Options struct {
	tol     float64
	maxIter int
	seed    uint64
	rng     *rand.Rand // nil ⇒ fresh PCG(seed, seed) per call
}

// WithTolerance sets the convergence tolerance on the Rayleigh quotient.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps the number of power-iteration steps per eigenpair.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithSeed seeds a fresh PCG source for each call. Clears WithRand.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand draws starting vectors from r. The generator is shared with the
// caller and advances across calls; it must not be used concurrently.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
		seed:    DefaultSeed,
	}
	for _, set := range user {
		set(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(o.seed, o.seed))
	}

	return o
}
