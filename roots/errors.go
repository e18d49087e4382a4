// SPDX-License-Identifier: MIT

package roots

import (
	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/scalar"
)

// Every message is prefixed with "roots: ". Call sites add the values that
// broke the contract via fmt.Errorf("Op: ...: %w", ErrX).
var (
	// ErrInvalidBracket indicates f(a)·f(b) > 0 or a ≥ b.
	ErrInvalidBracket = numerr.New(numerr.Validation, "roots: f(a) and f(b) must have opposite signs")

	// ErrBadOption indicates an option value outside its documented range.
	ErrBadOption = numerr.New(numerr.Validation, "roots: invalid option")

	// ErrZeroDerivative indicates |f'(x)| fell below the zero guard.
	ErrZeroDerivative = numerr.New(numerr.NumericFailure, "roots: zero derivative (f'(x) ≈ 0)")

	// ErrStalled indicates |f(x_i) − f(x_prev)| fell below the zero guard.
	ErrStalled = numerr.New(numerr.NumericFailure, "roots: secant stalled (f(x_i) ≈ f(x_prev))")

	// ErrNoConvergence indicates the fixed-point iteration exhausted its cap.
	ErrNoConvergence = numerr.New(numerr.NonConvergence, "roots: did not converge, check |g'(x)| < 1 near the fixed point")

	// ErrEvaluation indicates the user function failed during iteration.
	ErrEvaluation = numerr.New(numerr.Evaluation, "roots: evaluation error")
)

// ErrInvalidFunction is scalar.ErrInvalidFunction, re-exported so callers of
// this package can match it without importing scalar.
var ErrInvalidFunction = scalar.ErrInvalidFunction
