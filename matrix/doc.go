// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major matrix used by numlab's linear
// solver, fitting and reporting layers.
//
// 🚀 What it offers
//
//   - Dense: a flat row-major buffer (offset = i*cols + j) with safe At/Set
//     accessors that return errors instead of panicking.
//   - Row operations needed by elimination: SwapRows, RawRowView, Augment.
//   - Kernels: Mul, MatVec, Transpose with *Dense fast paths.
//   - Validators: a single source of truth for nil/shape/length checks.
//   - gonum bridges: ToGonum and FromGonum convert to and from gonum's mat
//     package so results can be cross-checked against a reference LAPACK-style
//     implementation.
//
// ⚙️ Numeric policy
//
// Set and the constructors reject NaN and ±Inf (ErrNaNInf). RawRowView hands
// out the backing slice for hot loops and bypasses the policy; callers that
// use it own the finiteness of what they write.
//
// 🧩 Errors
//
// Every sentinel is built with numerr.New(numerr.Validation, "matrix: ...")
// so errors.Is(err, numerr.ErrValidation) holds for all of them.
package matrix
