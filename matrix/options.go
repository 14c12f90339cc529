// SPDX-License-Identifier: MIT
// Package matrix: construction and comparison settings.
//
// Two knobs exist: the tolerance used by Equal, and whether a Dense rejects
// NaN/±Inf on construction and Set. Missing data is carried as NaN, so the
// loaders that read it switch the check off until FillMissing runs.

package matrix

import "math"

const (
	// DefaultEpsilon is the absolute tolerance of Equal.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf makes new matrices reject non-finite values.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option is a functional setting applied by constructors and Equal.
type Option func(*Options)

// Options is the resolved configuration; read it through the getters.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// Epsilon returns the resolved comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the tolerance of Equal.
// Panics if eps is negative, NaN or infinite; that is a programming error,
// not a data error.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf turns the finite-value check on (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN through as a missing-value marker.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts against the defaults; the last setter wins.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon, validateNaNInf: DefaultValidateNaNInf}
	for _, apply := range user {
		apply(&o)
	}

	return o
}
