// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/matrix"
)

const (
	opLeastSquares    = "LeastSquares"
	opNormalEquations = "NormalEquations"
)

// LeastSquares fits a polynomial of the given degree to (x, y) in the
// least-squares sense.
//
// Implementation:
//   - Stage 1: build the normal equations with NormalEquations.
//   - Stage 2: solve A·c = B with linsys.Solve; a singular A means the
//     points cannot determine the polynomial (ErrIllConditioned).
//
// Errors: ErrBadDegree, ErrLengthMismatch, ErrInsufficientPoints,
// ErrIllConditioned (wrapping linsys.ErrSingular).
// Complexity: O(n·degree + degree³).
func LeastSquares(x, y []float64, degree int) (Polynomial, error) {
	a, moments, err := NormalEquations(x, y, degree)
	if err != nil {
		return Polynomial{}, fmt.Errorf("%s: %w", opLeastSquares, err)
	}

	coeffs, _, err := linsys.Solve(a, moments)
	switch {
	case errors.Is(err, linsys.ErrSingular):
		return Polynomial{}, fmt.Errorf("%s: degree %d: %w: %w", opLeastSquares, degree, ErrIllConditioned, err)
	case err != nil:
		return Polynomial{}, fmt.Errorf("%s: %w", opLeastSquares, err)
	}

	return Polynomial{Coeffs: coeffs}, nil
}

// NormalEquations returns the (degree+1)×(degree+1) matrix A[i][j] = Σ x^(i+j)
// and the moments B[i] = Σ y·x^i of the least-squares system A·c = B.
//
// Implementation:
//   - Stage 1: validate degree ≥ 0, len(x) == len(y), n ≥ degree+1.
//   - Stage 2: power sums S[m] = Σ x^m for m = 0..2·degree and the moments,
//     walking one power vector forward with floats.Mul.
//   - Stage 3: A[i][j] = S[i+j].
//
// Errors: ErrBadDegree, ErrLengthMismatch, ErrInsufficientPoints,
// ErrIllConditioned (a power sum overflowed).
func NormalEquations(x, y []float64, degree int) (*matrix.Dense, []float64, error) {
	if degree < 0 {
		return nil, nil, fmt.Errorf("%s: degree=%d: %w", opNormalEquations, degree, ErrBadDegree)
	}
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%s: len(x)=%d, len(y)=%d: %w", opNormalEquations, len(x), len(y), ErrLengthMismatch)
	}
	n, k := len(x), degree+1
	if n < k {
		return nil, nil, fmt.Errorf("%s: %d points, degree %d needs %d: %w", opNormalEquations, n, degree, k, ErrInsufficientPoints)
	}

	sums := make([]float64, 2*degree+1)
	moments := make([]float64, k)
	pw := make([]float64, n)
	for i := range pw {
		pw[i] = 1
	}
	for m := range sums {
		sums[m] = floats.Sum(pw)
		if m < k {
			moments[m] = floats.Dot(y, pw)
		}
		floats.Mul(pw, x)
	}

	a, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opNormalEquations, err)
	}
	var i, j int
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			if err = a.Set(i, j, sums[i+j]); err != nil {
				return nil, nil, fmt.Errorf("%s: power sum overflow: %w: %w", opNormalEquations, ErrIllConditioned, err)
			}
		}
	}

	return a, moments, nil
}

// Line fits y ≈ c0 + c1·x.
func Line(x, y []float64) (Polynomial, error) { return LeastSquares(x, y, 1) }

// Parabola fits y ≈ c0 + c1·x + c2·x².
func Parabola(x, y []float64) (Polynomial, error) { return LeastSquares(x, y, 2) }
