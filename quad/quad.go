// SPDX-License-Identifier: MIT

package quad

import (
	"fmt"

	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/scalar"
)

var (
	// ErrBadSubintervals indicates n < 1.
	ErrBadSubintervals = numerr.New(numerr.Validation, "quad: number of subintervals must be >= 1")

	// ErrOddSubintervals indicates an odd n for Simpson's 1/3 rule.
	ErrOddSubintervals = numerr.New(numerr.Validation, "quad: Simpson 1/3 needs an even number of subintervals")
)

const (
	opTrapezoid = "Trapezoid"
	opSimpson13 = "Simpson13"
)

// Trapezoid integrates f over [a, b] with the composite trapezoid rule.
//
// Errors: ErrBadSubintervals; evaluation errors of f.
// Complexity: n+1 evaluations.
func Trapezoid(f scalar.Func, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%s: n=%d: %w", opTrapezoid, n, ErrBadSubintervals)
	}
	h := (b - a) / float64(n)

	fa, err := f.Eval(a)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opTrapezoid, err)
	}
	fb, err := f.Eval(b)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opTrapezoid, err)
	}
	sum := 0.5 * (fa + fb)
	var fx float64
	for i := 1; i < n; i++ {
		if fx, err = f.Eval(a + float64(i)*h); err != nil {
			return 0, fmt.Errorf("%s: node %d: %w", opTrapezoid, i, err)
		}
		sum += fx
	}

	return h * sum, nil
}

// Simpson13 integrates f over [a, b] with the composite Simpson 1/3 rule.
// Odd-indexed interior nodes weigh 4, even-indexed interior nodes weigh 2.
//
// Errors: ErrBadSubintervals, ErrOddSubintervals; evaluation errors of f.
// Complexity: n+1 evaluations.
func Simpson13(f scalar.Func, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%s: n=%d: %w", opSimpson13, n, ErrBadSubintervals)
	}
	if n%2 != 0 {
		return 0, fmt.Errorf("%s: n=%d: %w", opSimpson13, n, ErrOddSubintervals)
	}
	h := (b - a) / float64(n)

	fa, err := f.Eval(a)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opSimpson13, err)
	}
	fb, err := f.Eval(b)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opSimpson13, err)
	}
	sum := fa + fb
	var fx float64
	for i := 1; i < n; i++ {
		if fx, err = f.Eval(a + float64(i)*h); err != nil {
			return 0, fmt.Errorf("%s: node %d: %w", opSimpson13, i, err)
		}
		if i%2 == 0 {
			sum += 2 * fx
		} else {
			sum += 4 * fx
		}
	}

	return h / 3 * sum, nil
}
