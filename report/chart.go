// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/numlab/roots"
)

// PNG canvas size.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// Series is the convergence curve of a log: the record index against its
// last column (|b−a| for bracketing, |x_i+1 − x_i| for open methods).
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// ConvergenceSeries extracts the last column of every record.
func ConvergenceSeries(records []roots.Record) (Series, error) {
	if len(records) == 0 {
		return Series{}, fmt.Errorf("ConvergenceSeries: %w", ErrNoData)
	}
	cols := records[0].Columns()
	s := Series{
		Name: cols[len(cols)-1],
		X:    make([]float64, len(records)),
		Y:    make([]float64, len(records)),
	}
	for i, r := range records {
		vals := r.Values()
		s.X[i] = float64(r.Index())
		s.Y[i] = vals[len(vals)-1]
	}

	return s, nil
}

// logScalable reports whether every value is strictly positive.
func logScalable(ys []float64) bool {
	for _, y := range ys {
		if !(y > 0) {
			return false
		}
	}
	return true
}

// ConvergencePNG draws the convergence curve with gonum/plot and writes a PNG.
// The y axis is logarithmic when every value is positive.
func ConvergencePNG(w io.Writer, title string, records []roots.Record) error {
	s, err := ConvergenceSeries(records)
	if err != nil {
		return fmt.Errorf("ConvergencePNG: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = s.Name
	if logScalable(s.Y) {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(s.X))
	for i := range pts {
		pts[i].X, pts[i].Y = s.X[i], s.Y[i]
	}
	if err = plotutil.AddLinePoints(p, s.Name, pts); err != nil {
		return fmt.Errorf("ConvergencePNG: %w", err)
	}

	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return fmt.Errorf("ConvergencePNG: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("ConvergencePNG: %w", err)
	}

	return nil
}

// ConvergenceHTML renders the convergence curve as a standalone ECharts page.
func ConvergenceHTML(w io.Writer, title string, records []roots.Record) error {
	s, err := ConvergenceSeries(records)
	if err != nil {
		return fmt.Errorf("ConvergenceHTML: %w", err)
	}

	yAxis := opts.YAxis{Name: s.Name, Scale: opts.Bool(true)}
	if logScalable(s.Y) {
		yAxis.Type = "log"
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: s.Name + " per iteration"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(yAxis),
	)

	xs := make([]string, len(s.X))
	data := make([]opts.LineData, len(s.Y))
	for i := range s.X {
		xs[i] = strconv.Itoa(int(s.X[i]))
		data[i] = opts.LineData{Value: s.Y[i]}
	}
	line.SetXAxis(xs).AddSeries(s.Name, data)

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(line)
	if err = page.Render(w); err != nil {
		return fmt.Errorf("ConvergenceHTML: %w", err)
	}

	return nil
}
