// SPDX-License-Identifier: MIT

// Package fit computes least-squares polynomial fits through the normal
// equations.
//
// For degree k the (k+1)×(k+1) system
//
//	A[i][j] = Σ x^(i+j)     B[i] = Σ y·x^i
//
// is assembled with gonum's floats helpers and solved by linsys.Solve
// (Gaussian elimination with partial pivoting). The normal equations square
// the condition number of the Vandermonde matrix, so high degrees or badly
// scaled x lose precision quickly; a singular system is reported as
// ErrIllConditioned.
//
// Errors: ErrBadDegree, ErrLengthMismatch, ErrInsufficientPoints (kind
// Validation), ErrIllConditioned (kind NumericFailure, wraps linsys.ErrSingular).
package fit
