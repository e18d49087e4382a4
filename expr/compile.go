// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"

	"github.com/katalvlaran/numlab/scalar"
)

// Compile parses src into a scalar.Func.
// Every failure wraps scalar.ErrInvalidFunction together with the cause.
func Compile(src string) (scalar.Func, error) {
	n, err := Parse(src)
	if err != nil {
		return nil, fmt.Errorf("Compile: %w: %w", scalar.ErrInvalidFunction, err)
	}
	return Func(n), nil
}

// CompileWithDerivative parses src, differentiates it symbolically and
// returns the (f, f') pair Newton-Raphson consumes.
// A parse or differentiation failure wraps scalar.ErrInvalidFunction.
func CompileWithDerivative(src string) (scalar.Pair, error) {
	n, err := Parse(src)
	if err != nil {
		return nil, fmt.Errorf("CompileWithDerivative: %w: %w", scalar.ErrInvalidFunction, err)
	}
	d, err := Diff(n)
	if err != nil {
		return nil, fmt.Errorf("CompileWithDerivative(%q): %w: %w", src, scalar.ErrInvalidFunction, err)
	}
	return scalar.PairOf(Func(n), Func(d)), nil
}

// Func adapts a parsed tree to scalar.Func.
func Func(n Node) scalar.Func {
	if n == nil {
		return nil
	}
	return func(x float64) (float64, error) {
		return n.Eval(x), nil
	}
}
