// SPDX-License-Identifier: MIT

package linsolve

import "math"

// DefaultEpsilon is the absolute tolerance below which an entry counts as zero.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "linsolve: WithEpsilon: eps must be finite, non-negative"

// Option configures Solve.
type Option func(*Options)

// Options holds the resolved solver configuration.
type Options struct {
	eps float64
}

// WithEpsilon sets the zero tolerance. Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
