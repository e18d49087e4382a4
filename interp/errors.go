// SPDX-License-Identifier: MIT

package interp

import "github.com/katalvlaran/numlab/numerr"

var (
	// ErrLengthMismatch indicates len(x) != len(y).
	ErrLengthMismatch = numerr.New(numerr.Validation, "interp: x and y must have the same length")

	// ErrEmpty indicates an empty point set.
	ErrEmpty = numerr.New(numerr.Validation, "interp: at least one point is required")
)

const (
	opLagrange = "Lagrange"
	opNewTable = "NewTable"
	opNewton   = "Newton"
)
