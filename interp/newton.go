// SPDX-License-Identifier: MIT

package interp

import "fmt"

// Table is a Newton divided-difference table over n nodes.
//
// Cell (i, j) holds f[x_i, …, x_{i+j}] and is meaningful only for i < n−j;
// cells below the anti-diagonal do not exist and At reports them with
// ok=false rather than as zero. A Table is read-only after NewTable.
type Table struct {
	x     []float64
	cells [][]float64 // cells[i] has length n−i
}

// NewTable builds the divided-difference table column by column:
//
//	T[i][0] = y_i
//	T[i][j] = (T[i+1][j−1] − T[i][j−1]) / (x_{i+j} − x_i),  i < n−j
//
// x and y are copied.
//
// Errors: ErrLengthMismatch, ErrEmpty.
// Complexity: O(n²) time and space.
func NewTable(x, y []float64) (*Table, error) {
	if err := validatePoints(opNewTable, x, y); err != nil {
		return nil, err
	}
	n := len(x)
	t := &Table{x: append([]float64(nil), x...), cells: make([][]float64, n)}
	for i := range t.cells {
		t.cells[i] = make([]float64, n-i)
		t.cells[i][0] = y[i]
	}

	var i, j int
	for j = 1; j < n; j++ {
		for i = 0; i < n-j; i++ {
			t.cells[i][j] = (t.cells[i+1][j-1] - t.cells[i][j-1]) / (t.x[i+j] - t.x[i])
		}
	}

	return t, nil
}

// Len returns the number of nodes.
func (t *Table) Len() int { return len(t.x) }

// Nodes returns a copy of the x values.
func (t *Table) Nodes() []float64 { return append([]float64(nil), t.x...) }

// At returns cell (i, j). ok is false outside the upper-left triangle.
func (t *Table) At(i, j int) (float64, bool) {
	if i < 0 || j < 0 || i >= len(t.cells) || j >= len(t.cells[i]) {
		return 0, false
	}

	return t.cells[i][j], true
}

// Order returns a copy of the meaningful cells of column j (length n−j),
// or nil when j is out of range.
func (t *Table) Order(j int) []float64 {
	n := len(t.x)
	if j < 0 || j >= n {
		return nil
	}
	col := make([]float64, n-j)
	for i := range col {
		col[i] = t.cells[i][j]
	}

	return col
}

// Coefficients returns row 0: f[x0], f[x0,x1], …, f[x0,…,x_{n−1}].
func (t *Table) Coefficients() []float64 {
	return append([]float64(nil), t.cells[0]...)
}

// Eval evaluates the Newton form
//
//	P(at) = c0 + c1(at−x0) + c2(at−x0)(at−x1) + …
//
// by nested multiplication from the highest order down.
// Complexity: O(n).
func (t *Table) Eval(at float64) float64 {
	c := t.cells[0]
	p := c[len(c)-1]
	for j := len(c) - 2; j >= 0; j-- {
		p = p*(at-t.x[j]) + c[j]
	}

	return p
}

// Newton builds the divided-difference table for (x, y) and evaluates it at
// `at`. The table is returned for display.
//
// Errors: ErrLengthMismatch, ErrEmpty.
func Newton(x, y []float64, at float64) (float64, *Table, error) {
	t, err := NewTable(x, y)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", opNewton, err)
	}

	return t.Eval(at), t, nil
}
