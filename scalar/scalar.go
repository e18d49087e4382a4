// SPDX-License-Identifier: MIT

// Package scalar adapts user functions into the callables consumed by the
// numlab solvers and integrators.
//
// The core never inspects a function's definition; it only evaluates it.
// Evaluation may fail (domain error, overflow), and that failure is a
// distinct condition: every NaN, ±Inf or returned error is reported as
// ErrDomain wrapped with the offending point.
//
//	f := scalar.Of(math.Log)
//	_, err := f.Eval(-1) // errors.Is(err, scalar.ErrDomain)
package scalar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/numerr"
)

var (
	// ErrDomain indicates the function could not be evaluated at a point.
	ErrDomain = numerr.New(numerr.Evaluation, "scalar: function not defined at point")

	// ErrInvalidFunction indicates the function (or its derivative) could not
	// be built, e.g. a nil callable or an expression that failed to parse.
	ErrInvalidFunction = numerr.New(numerr.Validation, "scalar: invalid function")

	// ErrBadStep indicates a non-positive or non-finite differentiation step.
	ErrBadStep = numerr.New(numerr.Validation, "scalar: step must be finite and > 0")
)

// Func is a real function of one variable that may fail.
type Func func(x float64) (float64, error)

// Pair evaluates a function and its first derivative at the same point.
type Pair func(x float64) (fx, dfx float64, err error)

// Of adapts a plain float64 function. NaN and ±Inf results become ErrDomain.
func Of(f func(float64) float64) Func {
	if f == nil {
		return nil
	}
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// PairOf combines a function and its derivative into a Pair.
// Returns nil when either argument is nil.
func PairOf(f, df Func) Pair {
	if f == nil || df == nil {
		return nil
	}
	return func(x float64) (float64, float64, error) {
		fx, err := f.Eval(x)
		if err != nil {
			return 0, 0, err
		}
		dfx, err := df.Eval(x)
		if err != nil {
			return 0, 0, fmt.Errorf("derivative: %w", err)
		}
		return fx, dfx, nil
	}
}

// Eval evaluates f at x and normalizes every failure into ErrDomain.
// A panic inside f (e.g. an index error in user code) is reported the same way.
func (f Func) Eval(x float64) (v float64, err error) {
	if f == nil {
		return 0, ErrInvalidFunction
	}
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, fmt.Errorf("f(%g): panic %v: %w", x, r, ErrDomain)
		}
	}()
	v, err = f(x)
	if err != nil {
		return 0, wrapDomain("f", x, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("f(%g) = %g: %w", x, v, ErrDomain)
	}
	return v, nil
}

// Eval evaluates the pair at x with the same normalization as Func.Eval.
func (p Pair) Eval(x float64) (fx, dfx float64, err error) {
	if p == nil {
		return 0, 0, ErrInvalidFunction
	}
	defer func() {
		if r := recover(); r != nil {
			fx, dfx, err = 0, 0, fmt.Errorf("f(%g): panic %v: %w", x, r, ErrDomain)
		}
	}()
	fx, dfx, err = p(x)
	if err != nil {
		return 0, 0, wrapDomain("f", x, err)
	}
	if bad(fx) {
		return 0, 0, fmt.Errorf("f(%g) = %g: %w", x, fx, ErrDomain)
	}
	if bad(dfx) {
		return 0, 0, fmt.Errorf("f'(%g) = %g: %w", x, dfx, ErrDomain)
	}
	return fx, dfx, nil
}

// Func returns the value half of the pair.
func (p Pair) Func() Func {
	if p == nil {
		return nil
	}
	return func(x float64) (float64, error) {
		fx, _, err := p.Eval(x)
		return fx, err
	}
}

func bad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// wrapDomain keeps an existing ErrDomain chain intact and tags anything else.
func wrapDomain(name string, x float64, err error) error {
	if numerr.KindOf(err) == numerr.Evaluation {
		return err
	}
	return fmt.Errorf("%s(%g): %v: %w", name, x, err, ErrDomain)
}
