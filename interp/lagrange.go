// SPDX-License-Identifier: MIT

package interp

import "fmt"

// Lagrange evaluates the interpolating polynomial at `at` with
//
//	P(at) = Σ_i y_i · Π_{j≠i} (at − x_j) / (x_i − x_j)
//
// Errors: ErrLengthMismatch, ErrEmpty.
// Complexity: O(n²) time, O(1) extra space.
func Lagrange(x, y []float64, at float64) (float64, error) {
	if err := validatePoints(opLagrange, x, y); err != nil {
		return 0, err
	}

	var (
		p, li float64
		i, j  int
	)
	for i = range x {
		li = 1
		for j = range x {
			if i != j {
				li *= (at - x[j]) / (x[i] - x[j])
			}
		}
		p += y[i] * li
	}

	return p, nil
}

// validatePoints checks the shared point-set contract.
func validatePoints(op string, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%s: len(x)=%d, len(y)=%d: %w", op, len(x), len(y), ErrLengthMismatch)
	}
	if len(x) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmpty)
	}

	return nil
}
