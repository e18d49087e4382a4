// SPDX-License-Identifier: MIT

package fit

import "github.com/katalvlaran/numlab/numerr"

var (
	// ErrBadDegree indicates a negative polynomial degree.
	ErrBadDegree = numerr.New(numerr.Validation, "fit: degree must be >= 0")

	// ErrLengthMismatch indicates len(x) != len(y).
	ErrLengthMismatch = numerr.New(numerr.Validation, "fit: x and y must have the same length")

	// ErrInsufficientPoints indicates fewer than degree+1 points.
	ErrInsufficientPoints = numerr.New(numerr.Validation, "fit: not enough points for the requested degree")

	// ErrIllConditioned indicates the normal equations are singular.
	ErrIllConditioned = numerr.New(numerr.NumericFailure, "fit: normal equations are singular or ill-conditioned")
)
