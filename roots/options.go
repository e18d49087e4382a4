// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the stopping width (bracketing) or step (open methods).
	DefaultTolerance = 1e-6

	// DefaultMaxIter caps every iterative method.
	DefaultMaxIter = 50

	// DefaultZeroTol guards |f(m)| (early exit), |f'(x)| and |f(x_i) − f(x_prev)|.
	DefaultZeroTol = 1e-10

	// DefaultStep is the Isolate scan increment.
	DefaultStep = 1.0
)

// Option mutates Options. Values are checked when a solver starts, so a bad
// option is returned as ErrBadOption rather than a panic.
type Option func(*Options)

// Options is the resolved configuration of a solver call.
type Options struct {
	Tolerance float64
	MaxIter   int
	ZeroTol   float64
	Step      float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		ZeroTol:   DefaultZeroTol,
		Step:      DefaultStep,
	}
}

// WithTolerance sets the stopping tolerance; must be finite and > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIter sets the iteration cap; must be ≥ 1.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithZeroTol sets the near-zero guard; must be finite and ≥ 0.
func WithZeroTol(eps float64) Option {
	return func(o *Options) { o.ZeroTol = eps }
}

// WithStep sets the Isolate scan step; must be finite and > 0.
func WithStep(step float64) Option {
	return func(o *Options) { o.Step = step }
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	switch {
	case !finite(o.Tolerance) || o.Tolerance <= 0:
		return o, fmt.Errorf("tolerance=%g: %w", o.Tolerance, ErrBadOption)
	case o.MaxIter < 1:
		return o, fmt.Errorf("max iterations=%d: %w", o.MaxIter, ErrBadOption)
	case !finite(o.ZeroTol) || o.ZeroTol < 0:
		return o, fmt.Errorf("zero tolerance=%g: %w", o.ZeroTol, ErrBadOption)
	case !finite(o.Step) || o.Step <= 0:
		return o, fmt.Errorf("step=%g: %w", o.Step, ErrBadOption)
	}
	return o, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
