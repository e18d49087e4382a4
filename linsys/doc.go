// SPDX-License-Identifier: MIT

// Package linsys solves dense square linear systems A·x = b by Gaussian
// elimination with partial pivoting followed by back-substitution.
//
// 🚀 Entry points
//
//   - Solve(a, b)       - *matrix.Dense input; returns x and the reduced [A | b].
//   - SolveRows(a, b)   - [][]float64 input, e.g. decoded from JSON.
//   - SolveMat(a, b)    - gonum mat.Matrix / mat.Vector input.
//   - Residual(a, x, b) - A·x − b, for checking a solution.
//
// ⚙️ Algorithm
//
// For every column i the row with the largest |value| at or below the
// diagonal is swapped into row i (first such row on ties). An exactly zero
// pivot means the column has no usable entry and the system is reported
// singular; there is no epsilon threshold, so nearly singular systems are
// solved and may return large or inaccurate values. No iterative refinement
// is performed.
//
// 🧩 Errors
//
//   - ErrNilSystem, ErrDimensionMismatch (kind Validation).
//   - ErrSingular (kind NumericFailure), with the offending column.
//
// Inputs are never mutated: elimination runs on a fresh augmented copy, which
// is returned as the row-echelon artifact.
package linsys
