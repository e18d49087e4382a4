// SPDX-License-Identifier: MIT

// Package report renders numlab results for people: aligned text tables with
// six decimals, PNG convergence plots and interactive HTML charts.
//
// Core packages keep full precision and never format; everything that turns
// a number into text or pixels lives here.
//
//	Table(w, records)              - iteration log of any root solver
//	Matrix(w, m)                   - matrix rows (e.g. the reduced [A | b])
//	DividedDifferences(w, table)   - Newton table with blank lower cells
//	ConvergencePNG(w, title, recs) - last log column per iteration (gonum/plot)
//	ConvergenceHTML(w, title, recs)- the same series as an ECharts page (go-echarts)
package report
