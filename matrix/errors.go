// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/numlab/numerr"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// returned wrapped with the operation tag, e.g. "Mul: matrix: dimension
// mismatch"; callers match them with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = numerr.New(numerr.Validation, "matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = numerr.New(numerr.Validation, "matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, a non-square system, or ragged rows.
	ErrDimensionMismatch = numerr.New(numerr.Validation, "matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = numerr.New(numerr.Validation, "matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = numerr.New(numerr.Validation, "matrix: nil matrix")
)
