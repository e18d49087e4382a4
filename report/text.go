// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/numlab/interp"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/roots"
)

// ErrNoData indicates there is nothing to draw.
var ErrNoData = numerr.New(numerr.Validation, "report: no data to render")

// NoIterations is written by Table for an empty log, e.g. when a bracket
// endpoint was already a root.
const NoIterations = "(no iterations)"

// decimals is the fixed display precision of every numeric cell.
const decimals = 6

func num(v float64) string { return fmt.Sprintf("%.*f", decimals, v) }

func newTab(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
}

// Table writes an iteration log as an aligned table: an "iter" column then
// the record's own columns, every value with six decimals.
func Table(w io.Writer, records []roots.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, NoIterations)
		return err
	}

	tw := newTab(w)
	fmt.Fprintf(tw, "iter\t%s\t\n", strings.Join(records[0].Columns(), "\t"))
	for _, r := range records {
		cells := make([]string, 0, len(r.Values()))
		for _, v := range r.Values() {
			cells = append(cells, num(v))
		}
		fmt.Fprintf(tw, "%d\t%s\t\n", r.Index(), strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// Matrix writes m row by row with six decimals.
func Matrix(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return fmt.Errorf("Matrix: %w", matrix.ErrNilMatrix)
	}

	tw := newTab(w)
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return fmt.Errorf("Matrix: %w", err)
		}
		for _, v := range row {
			fmt.Fprintf(tw, "%s\t", num(v))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// DividedDifferences writes the Newton table with columns i, x_i, order 0..n−1.
// Cells below the anti-diagonal are left blank, never printed as zero.
func DividedDifferences(w io.Writer, t *interp.Table) error {
	if t == nil || t.Len() == 0 {
		return fmt.Errorf("DividedDifferences: %w", ErrNoData)
	}

	n := t.Len()
	x := t.Nodes()
	tw := newTab(w)
	fmt.Fprint(tw, "i\tx_i\t")
	for j := 0; j < n; j++ {
		fmt.Fprintf(tw, "order %d\t", j)
	}
	fmt.Fprintln(tw)
	for i := 0; i < n; i++ {
		fmt.Fprintf(tw, "%d\t%s\t", i, num(x[i]))
		for j := 0; j < n; j++ {
			if v, ok := t.At(i, j); ok {
				fmt.Fprintf(tw, "%s\t", num(v))
			} else {
				fmt.Fprint(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
