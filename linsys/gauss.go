// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numlab/matrix"
)

// Operation tags for uniform error prefixes.
const (
	opSolve     = "Solve"
	opSolveRows = "SolveRows"
	opSolveMat  = "SolveMat"
	opResidual  = "Residual"
)

// Solve returns x with A·x = b and the reduced augmented matrix [U | c].
//
// Implementation:
//   - Stage 1: validate a, b (nil → ErrNilSystem; non-square or len(b) ≠ n →
//     ErrDimensionMismatch) and build [A | b] with matrix.Augment.
//   - Stage 2: forward elimination. For i = 0..n−1 pick the row p ≥ i with the
//     largest |M[p][i]|; M[p][i] == 0 → ErrSingular; swap p into i; subtract
//     M[k][i]/M[i][i] times row i from every row k > i. Entries below the
//     pivot are stored as exact zeros.
//   - Stage 3: back-substitution from row n−1 up to row 0.
//
// Errors: ErrNilSystem, ErrDimensionMismatch, ErrSingular, matrix.ErrNaNInf.
// Complexity: Time O(n³), Space O(n²) for the augmented copy.
func Solve(a *matrix.Dense, b []float64) ([]float64, *matrix.Dense, error) {
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("%s: %w", opSolve, ErrNilSystem)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", opSolve, ErrDimensionMismatch, err)
	}
	n := a.Rows()
	if len(b) != n {
		return nil, nil, fmt.Errorf("%s: len(b)=%d, want %d: %w", opSolve, len(b), n, ErrDimensionMismatch)
	}
	aug, err := matrix.Augment(a, b)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	if err = eliminate(aug, n); err != nil {
		return nil, aug, fmt.Errorf("%s: %w", opSolve, err)
	}

	return backSubstitute(aug, n), aug, nil
}

// eliminate reduces the n×(n+1) augmented matrix to row-echelon form in place.
func eliminate(aug *matrix.Dense, n int) error {
	var (
		i, k, j, p int
		best, v    float64
		pivot, row []float64
		factor     float64
	)
	for i = 0; i < n; i++ {
		// Partial pivoting: strict > keeps the first row on ties.
		p, best = i, -1
		for k = i; k < n; k++ {
			row, _ = aug.RawRowView(k)
			if v = math.Abs(row[i]); v > best {
				p, best = k, v
			}
		}
		if best == 0 {
			return fmt.Errorf("column %d: %w", i, ErrSingular)
		}
		if err := aug.SwapRows(i, p); err != nil {
			return err
		}

		pivot, _ = aug.RawRowView(i)
		for k = i + 1; k < n; k++ {
			row, _ = aug.RawRowView(k)
			if row[i] == 0 {
				continue
			}
			factor = row[i] / pivot[i]
			row[i] = 0
			for j = i + 1; j <= n; j++ {
				row[j] -= factor * pivot[j]
			}
		}
	}

	return nil
}

// backSubstitute solves the upper-triangular system held in aug.
func backSubstitute(aug *matrix.Dense, n int) []float64 {
	x := make([]float64, n)
	var (
		i, j int
		sum  float64
		row  []float64
	)
	for i = n - 1; i >= 0; i-- {
		row, _ = aug.RawRowView(i)
		sum = row[n]
		for j = i + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		x[i] = sum / row[i]
	}

	return x
}

// SolveRows is Solve for row-slice input, e.g. a matrix decoded from JSON.
//
// Errors: as Solve; ragged rows are ErrDimensionMismatch and an empty matrix
// is ErrNilSystem.
func SolveRows(a [][]float64, b []float64) ([]float64, *matrix.Dense, error) {
	if len(a) == 0 || b == nil {
		return nil, nil, fmt.Errorf("%s: %w", opSolveRows, ErrNilSystem)
	}
	m, err := matrix.NewFromRows(a)
	switch {
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return nil, nil, fmt.Errorf("%s: %w: %w", opSolveRows, ErrDimensionMismatch, err)
	case err != nil:
		return nil, nil, fmt.Errorf("%s: %w", opSolveRows, err)
	}

	return Solve(m, b)
}

// SolveMat is Solve for gonum input. The solution is returned as a
// *mat.VecDense so it composes with further gonum operations.
func SolveMat(a mat.Matrix, b mat.Vector) (*mat.VecDense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opSolveMat, ErrNilSystem)
	}
	m, err := matrix.FromGonum(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveMat, err)
	}
	rhs, err := matrix.VecFromGonum(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveMat, err)
	}
	x, _, err := Solve(m, rhs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveMat, err)
	}

	return mat.NewVecDense(len(x), x), nil
}

// Residual returns A·x − b.
//
// Errors: ErrNilSystem, ErrDimensionMismatch.
func Residual(a *matrix.Dense, x, b []float64) ([]float64, error) {
	if a == nil || x == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opResidual, ErrNilSystem)
	}
	if len(b) != a.Rows() {
		return nil, fmt.Errorf("%s: len(b)=%d, want %d: %w", opResidual, len(b), a.Rows(), ErrDimensionMismatch)
	}
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opResidual, ErrDimensionMismatch, err)
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}
