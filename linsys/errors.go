// SPDX-License-Identifier: MIT

package linsys

import "github.com/katalvlaran/numlab/numerr"

var (
	// ErrNilSystem indicates a nil matrix or right-hand side.
	ErrNilSystem = numerr.New(numerr.Validation, "linsys: nil system")

	// ErrDimensionMismatch indicates a non-square A or len(b) != rows(A).
	ErrDimensionMismatch = numerr.New(numerr.Validation, "linsys: dimension mismatch")

	// ErrSingular indicates a zero pivot after partial pivoting.
	ErrSingular = numerr.New(numerr.NumericFailure, "linsys: singular or ill-conditioned matrix (zero pivot)")
)
