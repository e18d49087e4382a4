// SPDX-License-Identifier: MIT

// Package numerr defines the error taxonomy shared by every numlab package.
//
// Each package keeps its own sentinel set (roots.ErrZeroDerivative,
// linsys.ErrSingular, …) built with New, so a caller can match either the
// exact condition or its category:
//
//	errors.Is(err, roots.ErrZeroDerivative)   // exact condition
//	errors.Is(err, numerr.ErrNumericFailure)  // any numeric breakdown
//
// Categories:
//   - Validation    : bad shapes, length mismatches, bad tolerance/degree/options.
//   - NumericFailure: zero derivative, stalled secant, singular pivot.
//   - NonConvergence: iteration cap exhausted where that is a hard failure.
//   - Evaluation    : the caller-supplied function failed (domain error, NaN/Inf).
//
// Sentinels are never mutated; context is added at the call site with
// fmt.Errorf("Op: ...: %w", ErrX) so errors.Is keeps working through wraps.
package numerr

import "errors"

// Kind classifies a failure.
type Kind int

const (
	// Validation marks input/contract violations detected before numeric work.
	Validation Kind = iota + 1
	// NumericFailure marks a fatal breakdown of the method for this input.
	NumericFailure
	// NonConvergence marks an exhausted iteration budget treated as failure.
	NonConvergence
	// Evaluation marks a failure inside a caller-supplied function.
	Evaluation
)

// String returns the lower-case category name.
func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NumericFailure:
		return "numeric failure"
	case NonConvergence:
		return "non-convergence"
	case Evaluation:
		return "evaluation"
	default:
		return "unknown"
	}
}

// category is the comparable target behind the Err* category sentinels.
type category struct{ kind Kind }

func (c *category) Error() string { return "numerr: " + c.kind.String() }

// Category sentinels. Match them with errors.Is.
var (
	ErrValidation     error = &category{Validation}
	ErrNumericFailure error = &category{NumericFailure}
	ErrNonConvergence error = &category{NonConvergence}
	ErrEvaluation     error = &category{Evaluation}
)

// Sentinel is a package-level error that also belongs to a category.
type Sentinel struct {
	kind Kind
	msg  string
}

// New returns a sentinel with message msg in category kind.
// Messages follow the "pkg: description" convention.
func New(kind Kind, msg string) *Sentinel {
	return &Sentinel{kind: kind, msg: msg}
}

// Error implements error.
func (s *Sentinel) Error() string { return s.msg }

// Kind reports the sentinel's category.
func (s *Sentinel) Kind() Kind { return s.kind }

// Is lets errors.Is match the sentinel against its category sentinel.
func (s *Sentinel) Is(target error) bool {
	c, ok := target.(*category)
	return ok && c.kind == s.kind
}

// KindOf returns the category of the first Sentinel found in err's chain,
// or 0 when err carries none.
func KindOf(err error) Kind {
	var s *Sentinel
	if errors.As(err, &s) {
		return s.kind
	}
	return 0
}
