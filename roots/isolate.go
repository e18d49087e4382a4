// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/scalar"
)

// Operation tags for uniform error prefixes.
const (
	opIsolate       = "Isolate"
	opBisection     = "Bisection"
	opFalsePosition = "FalsePosition"
	opNewton        = "NewtonRaphson"
	opSecant        = "Secant"
	opFixedPoint    = "FixedPoint"
)

// Isolate scans [lo, hi] left to right in increments of Step (WithStep,
// default 1.0) and returns the first sub-interval [a, next] with
// f(a)·f(next) ≤ 0.
//
// Implementation:
//   - Stage 1: evaluate f(lo).
//   - Stage 2: next = min(a+step, hi); stop if next == a (lo == hi, or a step
//     below the spacing of floats at a); compare signs; advance.
//
// Returns ok=false, err=nil when no sign change is seen; that is a normal
// outcome, not an error. Only the first bracket is reported and it need not
// contain a unique root.
//
// Errors: ErrBadOption, ErrInvalidFunction, ErrEvaluation.
// Complexity: O((hi−lo)/step) evaluations.
func Isolate(f scalar.Func, lo, hi float64, opts ...Option) (Bracket, bool, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Bracket{}, false, fmt.Errorf("%s: %w", opIsolate, err)
	}
	if f == nil {
		return Bracket{}, false, fmt.Errorf("%s: %w", opIsolate, ErrInvalidFunction)
	}

	a := lo
	fa, err := evalAt(opIsolate, f, a)
	if err != nil {
		return Bracket{}, false, err
	}
	for a < hi {
		next := math.Min(a+o.Step, hi)
		if next == a {
			break
		}
		fn, err := evalAt(opIsolate, f, next)
		if err != nil {
			return Bracket{}, false, err
		}
		if fa*fn <= 0 {
			return Bracket{A: a, B: next}, true, nil
		}
		a, fa = next, fn
	}

	return Bracket{}, false, nil
}

// evalAt evaluates f and tags failures with the operation and ErrEvaluation.
func evalAt(op string, f scalar.Func, x float64) (float64, error) {
	v, err := f.Eval(x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", op, ErrEvaluation, err)
	}
	return v, nil
}
