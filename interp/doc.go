// SPDX-License-Identifier: MIT

// Package interp evaluates the interpolating polynomial through a point set.
//
// Two constructions of the same polynomial are offered:
//
//	Lagrange(x, y, at)  - direct O(n²) sum of y_i·L_i(at); nothing is kept.
//	NewTable(x, y)      - Newton divided-difference table, O(n²) to build,
//	                      O(n) per Eval; the table itself is a result and is
//	                      what the report package renders.
//	Newton(x, y, at)    - NewTable followed by Eval.
//
// For distinct nodes both agree up to rounding. Distinct x values are a
// caller precondition: coincident nodes are not detected and produce ±Inf or
// NaN.
//
// Errors: ErrEmpty, ErrLengthMismatch (kind Validation).
package interp
