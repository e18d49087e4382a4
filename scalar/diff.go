// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
)

// cubeEps is the step scale that balances truncation and rounding error for
// a second-order central difference.
var cubeEps = math.Cbrt(math.Nextafter(1, 2) - 1)

// Central builds an approximate Pair from f using the central difference
//
//	f'(x) ≈ (f(x+h) − f(x−h)) / 2h
//
// When h is 0 the step is chosen per point as cubeEps·max(1, |x|).
// The derivative is an approximation (O(h²) truncation error); use an exact
// derivative (expr.CompileWithDerivative or PairOf) when one is available.
//
// Errors: ErrInvalidFunction for nil f, ErrBadStep for h < 0, NaN or ±Inf.
func Central(f Func, h float64) (Pair, error) {
	if f == nil {
		return nil, ErrInvalidFunction
	}
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("Central: h=%g: %w", h, ErrBadStep)
	}

	return func(x float64) (float64, float64, error) {
		fx, err := f.Eval(x)
		if err != nil {
			return 0, 0, err
		}
		step := h
		if step == 0 {
			step = cubeEps * math.Max(1, math.Abs(x))
		}
		// Divide by the realized spread, not 2·step.
		hi := x + step
		lo := x - step
		fhi, err := f.Eval(hi)
		if err != nil {
			return 0, 0, err
		}
		flo, err := f.Eval(lo)
		if err != nil {
			return 0, 0, err
		}
		return fx, (fhi - flo) / (hi - lo), nil
	}, nil
}
