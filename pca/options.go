// SPDX-License-Identifier: MIT

package pca

import (
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpca/eigen"
	"github.com/katalvlaran/lvpca/variance"
)

// DefaultThreshold is the cumulative explained-variance target used when k
// is not fixed.
const DefaultThreshold = variance.DefaultThreshold

const panicLoggerNil = "pca: WithLogger: logger must not be nil"

// Option configures Fit.
type Option func(*Options)

// Options holds the resolved Fit configuration.
type Options struct {
	k         int
	kSet      bool
	threshold float64
	eigen     []eigen.Option
	log       logrus.FieldLogger
}

// WithK fixes the number of components. Values outside [1, cols] make Fit
// fail with ErrRange.
func WithK(k int) Option {
	return func(o *Options) {
		o.k = k
		o.kSet = true
	}
}

// WithThreshold sets the cumulative explained-variance target for automatic
// k selection. Values outside (0, 1] make Fit fail with ErrRange. Ignored
// when WithK is given.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.threshold = t }
}

// WithSeed seeds the eigensolver's random starts.
func WithSeed(seed uint64) Option {
	eo := eigen.WithSeed(seed)

	return func(o *Options) { o.eigen = append(o.eigen, eo) }
}

// WithRand draws the eigensolver's random starts from r.
func WithRand(r *rand.Rand) Option {
	eo := eigen.WithRand(r)

	return func(o *Options) { o.eigen = append(o.eigen, eo) }
}

// WithTolerance sets the eigensolver convergence tolerance.
func WithTolerance(tol float64) Option {
	eo := eigen.WithTolerance(tol)

	return func(o *Options) { o.eigen = append(o.eigen, eo) }
}

// WithMaxIterations caps power-iteration steps per eigenpair.
func WithMaxIterations(n int) Option {
	eo := eigen.WithMaxIterations(n)

	return func(o *Options) { o.eigen = append(o.eigen, eo) }
}

// WithLogger routes stage diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.log = l }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func gatherOptions(user ...Option) Options {
	o := Options{threshold: DefaultThreshold}
	for _, set := range user {
		set(&o)
	}
	if o.log == nil {
		o.log = discardLogger()
	}

	return o
}
