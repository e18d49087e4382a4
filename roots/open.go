// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/scalar"
)

// NewtonRaphson iterates x_{i+1} = x_i − f(x_i)/f'(x_i) from x0.
//
// The derivative comes from the Pair (exact via expr.CompileWithDerivative
// or scalar.PairOf, approximate via scalar.Central). A nil Pair means the
// derivative could not be produced and fails fast with ErrInvalidFunction.
//
// Stopping:
//   - |x_{i+1} − x_i| < tol → return x_i, the iterate the step was taken
//     from. x_{i+1} is still in the last record's Next.
//   - MaxIter reached → return the last iterate, nil error (soft cap).
//   - |f'(x_i)| < ZeroTol → ErrZeroDerivative (fatal, not retried).
//
// On error the returned value is the last iterate reached and the log holds
// every completed iteration.
func NewtonRaphson(p scalar.Pair, x0 float64, opts ...Option) (float64, []NewtonStep, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", opNewton, err)
	}
	if p == nil {
		return 0, nil, fmt.Errorf("%s: derivative unavailable: %w", opNewton, ErrInvalidFunction)
	}

	x := x0
	steps := make([]NewtonStep, 0, o.MaxIter)
	for iter := 1; iter <= o.MaxIter; iter++ {
		fx, dfx, err := p.Eval(x)
		if err != nil {
			return x, steps, fmt.Errorf("%s: iteration %d: %w: %w", opNewton, iter, ErrEvaluation, err)
		}
		if math.Abs(dfx) < o.ZeroTol {
			return x, steps, fmt.Errorf("%s: iteration %d: f'(%g)=%g: %w", opNewton, iter, x, dfx, ErrZeroDerivative)
		}

		next := x - fx/dfx
		delta := math.Abs(next - x)
		steps = append(steps, NewtonStep{Iter: iter, X: x, FX: fx, DFX: dfx, Next: next, Delta: delta})
		if delta < o.Tolerance {
			return x, steps, nil
		}
		x = next
	}

	return x, steps, nil
}

// Secant iterates
//
//	x_{i+1} = x_i − f(x_i)·(x_i − x_{i−1}) / (f(x_i) − f(x_{i−1}))
//
// from the seeds xPrev and x0; no derivative is needed. One evaluation per
// iteration: f(x_{i−1}) is carried over from the previous pass.
//
// Stopping and the soft cap match NewtonRaphson. A denominator with
// |f(x_i) − f(x_{i−1})| < ZeroTol fails with ErrStalled.
func Secant(f scalar.Func, xPrev, x0 float64, opts ...Option) (float64, []SecantStep, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", opSecant, err)
	}
	if f == nil {
		return 0, nil, fmt.Errorf("%s: %w", opSecant, ErrInvalidFunction)
	}

	prev, x := xPrev, x0
	fPrev, err := evalAt(opSecant, f, prev)
	if err != nil {
		return x, nil, err
	}
	steps := make([]SecantStep, 0, o.MaxIter)
	for iter := 1; iter <= o.MaxIter; iter++ {
		fx, err := f.Eval(x)
		if err != nil {
			return x, steps, fmt.Errorf("%s: iteration %d: %w: %w", opSecant, iter, ErrEvaluation, err)
		}
		denom := fx - fPrev
		if math.Abs(denom) < o.ZeroTol {
			return x, steps, fmt.Errorf("%s: iteration %d: f(%g)=%g, f(%g)=%g: %w",
				opSecant, iter, x, fx, prev, fPrev, ErrStalled)
		}

		next := x - fx*(x-prev)/denom
		delta := math.Abs(next - x)
		steps = append(steps, SecantStep{Iter: iter, Prev: prev, X: x, FX: fx, Next: next, Delta: delta})
		if delta < o.Tolerance {
			return x, steps, nil
		}
		prev, fPrev, x = x, fx, next
	}

	return x, steps, nil
}

// FixedPoint iterates x_{i+1} = g(x_i) from x0 until |x_{i+1} − x_i| < tol
// and returns x_i, as NewtonRaphson does.
//
// Unlike the other solvers an exhausted cap is a hard failure: the call
// returns ErrNoConvergence together with the last iterate and the full log.
// Any run that uses all MaxIter iterations counts as exhausted, including
// one whose last iteration met the tolerance. Failures inside g are wrapped
// in ErrEvaluation.
func FixedPoint(g scalar.Func, x0 float64, opts ...Option) (float64, []FixedPointStep, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", opFixedPoint, err)
	}
	if g == nil {
		return 0, nil, fmt.Errorf("%s: %w", opFixedPoint, ErrInvalidFunction)
	}

	x := x0
	delta := math.Inf(1)
	steps := make([]FixedPointStep, 0, o.MaxIter)
	for iter := 1; iter <= o.MaxIter; iter++ {
		gx, err := g.Eval(x)
		if err != nil {
			return x, steps, fmt.Errorf("%s: iteration %d: g(%g): %w: %w", opFixedPoint, iter, x, ErrEvaluation, err)
		}
		delta = math.Abs(gx - x)
		steps = append(steps, FixedPointStep{Iter: iter, X: x, GX: gx, Next: gx, Delta: delta})
		if delta < o.Tolerance {
			if iter < o.MaxIter {
				return x, steps, nil
			}
			break
		}
		x = gx
	}

	return x, steps, fmt.Errorf("%s: %d iterations, last |x_i+1 - x_i|=%g: %w", opFixedPoint, o.MaxIter, delta, ErrNoConvergence)
}
