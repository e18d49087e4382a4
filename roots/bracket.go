// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/scalar"
)

// candidateFunc picks the next trial point inside [a, b].
type candidateFunc func(a, b, fa, fb float64) float64

func midpoint(a, b, _, _ float64) float64 { return (a + b) / 2 }

// falsePositionPoint is the secant through (a, f(a)) and (b, f(b)).
// fa == fb only happens when both are zero under the bracket invariant;
// the midpoint is returned then instead of 0/0.
func falsePositionPoint(a, b, fa, fb float64) float64 {
	if fb == fa {
		return (a + b) / 2
	}
	return (a*fb - b*fa) / (fb - fa)
}

// Bisection halves [a, b] until its width is at most the tolerance.
//
// Implementation:
//   - Stage 1: validate options, a < b and f(a)·f(b) ≤ 0 (else ErrInvalidBracket).
//     An endpoint with |f| < ZeroTol is returned at once with an empty log.
//     This departs from iterating anyway, which with f(a) = 0 keeps moving a
//     toward b and can end away from the exact root.
//   - Stage 2: while (b−a) > tol and iter < MaxIter: m = (a+b)/2, log,
//     stop if |f(m)| < ZeroTol, otherwise keep the half where f changes sign
//     (f(a)·f(m) < 0 ⇒ b = m, else a = m).
//   - Stage 3: return the midpoint of the final bracket.
//
// Reaching MaxIter is not an error: the best estimate is returned.
//
// Errors: ErrBadOption, ErrInvalidFunction, ErrInvalidBracket, ErrEvaluation.
// Complexity: O(min(MaxIter, log2((b−a)/tol))) evaluations.
func Bisection(f scalar.Func, a, b float64, opts ...Option) (float64, []BracketStep, error) {
	return solveBracket(opBisection, f, a, b, opts, midpoint)
}

// FalsePosition (regula falsi) replaces the midpoint of Bisection with
//
//	m = (a·f(b) − b·f(a)) / (f(b) − f(a))
//
// and tracks f(a), f(b) as the bracket moves. Stopping rules, the soft
// iteration cap and errors are those of Bisection. The result is the same
// formula evaluated on the final bracket.
//
// Note: one endpoint often stays fixed for convex f, so (b−a) may never drop
// below the tolerance; the |f(m)| guard or the cap then ends the loop.
func FalsePosition(f scalar.Func, a, b float64, opts ...Option) (float64, []BracketStep, error) {
	return solveBracket(opFalsePosition, f, a, b, opts, falsePositionPoint)
}

// solveBracket is the loop shared by Bisection and FalsePosition.
func solveBracket(op string, f scalar.Func, a, b float64, opts []Option, next candidateFunc) (float64, []BracketStep, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", op, err)
	}
	if f == nil {
		return 0, nil, fmt.Errorf("%s: %w", op, ErrInvalidFunction)
	}
	if !(a < b) {
		return 0, nil, fmt.Errorf("%s: need a < b, got a=%g b=%g: %w", op, a, b, ErrInvalidBracket)
	}

	fa, err := evalAt(op, f, a)
	if err != nil {
		return 0, nil, err
	}
	fb, err := evalAt(op, f, b)
	if err != nil {
		return 0, nil, err
	}
	if fa*fb > 0 {
		return 0, nil, fmt.Errorf("%s: f(%g)=%g, f(%g)=%g: %w", op, a, fa, b, fb, ErrInvalidBracket)
	}
	switch {
	case math.Abs(fa) < o.ZeroTol:
		return a, []BracketStep{}, nil
	case math.Abs(fb) < o.ZeroTol:
		return b, []BracketStep{}, nil
	}

	steps := make([]BracketStep, 0, o.MaxIter)
	for iter := 1; b-a > o.Tolerance && iter <= o.MaxIter; iter++ {
		m := next(a, b, fa, fb)
		fm, err := f.Eval(m)
		if err != nil {
			return m, steps, fmt.Errorf("%s: iteration %d: %w: %w", op, iter, ErrEvaluation, err)
		}
		steps = append(steps, BracketStep{Iter: iter, A: a, B: b, M: m, FM: fm, Width: math.Abs(b - a)})

		// Near-exact root: stop without touching the bracket.
		if math.Abs(fm) < o.ZeroTol {
			break
		}
		if fa*fm < 0 {
			b, fb = m, fm
		} else {
			a, fa = m, fm
		}
	}

	return next(a, b, fa, fb), steps, nil
}
