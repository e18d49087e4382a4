// SPDX-License-Identifier: MIT

// Package matrix - converters to and from gonum's mat package.
//
// gonum is the reference implementation numlab is checked against: tests
// solve the same systems with mat.VecDense.SolveVec and compare. The CLI and
// linsys.SolveMat accept gonum values directly through FromGonum.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if d, ok := m.(*Dense); ok {
		// mat.NewDense takes ownership of its slice; hand it a copy.
		return mat.NewDense(d.r, d.c, append([]float64(nil), d.data...)), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := mat.NewDense(rows, cols, nil)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
//
// Errors: ErrNilMatrix (nil src), ErrInvalidDimensions (empty src),
// ErrNaNInf (non-finite entry).
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = src.At(i, j)
			if !isFinite(v) {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrNaNInf))
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// VecFromGonum copies a gonum mat.Vector into a fresh slice.
func VecFromGonum(v mat.Vector) ([]float64, error) {
	if v == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out, nil
}
