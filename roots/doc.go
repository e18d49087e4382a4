// Package roots finds real roots of scalar functions f: ℝ → ℝ.
//
// 🚀 What is in here?
//
//	Isolation  - Isolate scans [lo, hi] in fixed steps for the first sign change.
//	Bracketing - Bisection and FalsePosition shrink a sign-changing bracket.
//	Open       - NewtonRaphson, Secant and FixedPoint refine from one or two seeds.
//
// Every solver returns (root, log, error). The log is a fresh slice of
// per-iteration records owned by the caller; each method has its own record
// shape (BracketStep, NewtonStep, SecantStep, FixedPointStep) and all of them
// satisfy Record so the report package can tabulate any of them.
//
// ⚙️ Configuration (functional options):
//
//	WithTolerance(tol)  - stopping width/step, default 1e-6
//	WithMaxIter(n)      - iteration cap, default 50
//	WithZeroTol(eps)    - |f(m)|, |f'(x)| and |Δf| guard, default 1e-10
//	WithStep(step)      - Isolate scan step, default 1.0
//
// Stopping policy:
//
//	Bisection, FalsePosition, NewtonRaphson and Secant treat an exhausted
//	iteration cap as a soft condition: they return the best estimate and a nil
//	error. FixedPoint instead fails with ErrNoConvergence (still returning its
//	last iterate and log), and a run that needs all MaxIter iterations counts
//	as exhausted even if the last one met the tolerance. The asymmetry is
//	deliberate and pinned by tests.
//
//	On convergence the open solvers return x_i, the iterate the final step
//	started from; the final x_i+1 is in the last record.
//
// Errors (sentinel, match with errors.Is; categories from numerr):
//
//	ErrInvalidBracket   (validation)      f(a)·f(b) > 0 or a ≥ b
//	ErrBadOption        (validation)      tolerance/cap/step out of range
//	ErrInvalidFunction  (validation)      nil callable or missing derivative
//	ErrZeroDerivative   (numeric failure) |f'(x)| below the zero guard
//	ErrStalled          (numeric failure) secant denominator below the zero guard
//	ErrNoConvergence    (non-convergence) fixed point ran out of iterations
//	ErrEvaluation       (evaluation)      the user function failed
//
// Example:
//
//	f := scalar.Of(func(x float64) float64 { return x*x - 4 })
//	br, ok, _ := roots.Isolate(f, 0, 10)
//	if ok {
//		r, steps, err := roots.Bisection(f, br.A, br.B, roots.WithTolerance(1e-8))
//	}
package roots
