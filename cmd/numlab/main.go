// SPDX-License-Identifier: MIT

// Command numlab runs one numerical method per invocation and prints its
// iteration log or result as an aligned table.
//
// Usage:
//
//	numlab <method> [flags]
//
// Methods:
//
//	isolate              scan [a,b] with -step for the first sign change of -f
//	bisection            isolate a bracket on [a,b], then bisect it
//	false-position       isolate a bracket on [a,b], then apply regula falsi
//	newton               Newton-Raphson from -x0 with the symbolic derivative of -f
//	secant               secant method from -x0, -x1
//	fixed-point          iterate -g from -x0
//	gauss                solve -A (JSON matrix) · x = -B (JSON vector)
//	lagrange             evaluate the Lagrange polynomial through -x, -y at -at
//	divided-differences  Newton table for -x, -y and its value at -at
//	lsq                  least-squares polynomial of -degree through -x, -y
//	trapezoid            composite trapezoid rule of -f on [a,b] with -n panels
//	simpson              composite Simpson 1/3 rule of -f on [a,b] with -n panels
//
// Examples:
//
//	numlab newton -f "x^2 - 2" -x0 1
//	numlab bisection -f "x^3 - x - 2" -a 0 -b 5 -plot conv.png
//	numlab gauss -A "[[2,1],[1,3]]" -B "[3,5]"
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/fit"
	"github.com/katalvlaran/numlab/interp"
	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/quad"
	"github.com/katalvlaran/numlab/report"
	"github.com/katalvlaran/numlab/roots"
	"github.com/katalvlaran/numlab/scalar"
)

var (
	errUsage         = errors.New("numlab: usage")
	errUnknownMethod = errors.New("numlab: unknown method")
	errNoBracket     = errors.New("numlab: no sign change found")
	errMissingFlag   = errors.New("numlab: missing required flag")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// config holds every flag; each method reads the ones it needs.
type config struct {
	f, g     string
	a, b     float64
	x0, x1   float64
	tol      float64
	maxIter  int
	step     float64
	matA     string
	vecB     string
	xs, ys   string
	at       float64
	degree   int
	n        int
	plotPath string
	htmlPath string
	logLevel string
}

type method func(cfg *config, stdout io.Writer, log *slog.Logger) error

var methods = map[string]method{
	"isolate":             runIsolate,
	"bisection":           runBracketing(roots.Bisection),
	"false-position":      runBracketing(roots.FalsePosition),
	"newton":              runNewton,
	"secant":              runSecant,
	"fixed-point":         runFixedPoint,
	"gauss":               runGauss,
	"lagrange":            runLagrange,
	"divided-differences": runDividedDifferences,
	"lsq":                 runLeastSquares,
	"trapezoid":           runQuadrature(quad.Trapezoid),
	"simpson":             runQuadrature(quad.Simpson13),
}

func methodNames() string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// run dispatches args[0] to its method. Output goes to stdout, diagnostics
// and logs to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintf(stderr, "usage: numlab <method> [flags]\nmethods: %s\n", methodNames())
		return errUsage
	}
	name := args[0]
	m, ok := methods[name]
	if !ok {
		return fmt.Errorf("%w %q (want one of: %s)", errUnknownMethod, name, methodNames())
	}

	cfg := &config{}
	fs := newFlagSet(name, cfg, stderr)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	log, err := newLogger(stderr, cfg.logLevel)
	if err != nil {
		return err
	}
	log.Debug("run", "method", name, "args", args[1:])

	if err = m(cfg, stdout, log); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func newFlagSet(name string, cfg *config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("numlab "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	d := roots.DefaultOptions()

	fs.StringVar(&cfg.f, "f", "", "function of x, e.g. \"x^3 - x - 2\"")
	fs.StringVar(&cfg.g, "g", "", "iteration function g(x) for fixed-point")
	fs.Float64Var(&cfg.a, "a", 0, "left end of the interval")
	fs.Float64Var(&cfg.b, "b", 1, "right end of the interval")
	fs.Float64Var(&cfg.x0, "x0", 0, "initial guess")
	fs.Float64Var(&cfg.x1, "x1", 1, "second initial guess (secant)")
	fs.Float64Var(&cfg.tol, "tol", d.Tolerance, "stopping tolerance")
	fs.IntVar(&cfg.maxIter, "max-iter", d.MaxIter, "iteration cap")
	fs.Float64Var(&cfg.step, "step", d.Step, "scan step for bracket isolation")
	fs.StringVar(&cfg.matA, "A", "", "coefficient matrix as JSON, e.g. [[2,1],[1,3]]")
	fs.StringVar(&cfg.vecB, "B", "", "right-hand side as JSON, e.g. [3,5]")
	fs.StringVar(&cfg.xs, "x", "", "x coordinates as JSON")
	fs.StringVar(&cfg.ys, "y", "", "y coordinates as JSON")
	fs.Float64Var(&cfg.at, "at", 0, "evaluation point")
	fs.IntVar(&cfg.degree, "degree", 1, "least-squares polynomial degree")
	fs.IntVar(&cfg.n, "n", 10, "number of subintervals")
	fs.StringVar(&cfg.plotPath, "plot", "", "write the convergence curve as PNG")
	fs.StringVar(&cfg.htmlPath, "html", "", "write the convergence curve as an HTML chart")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: numlab %s [flags]\n", name)
		fs.PrintDefaults()
	}

	return fs
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func (c *config) rootOptions() []roots.Option {
	return []roots.Option{
		roots.WithTolerance(c.tol),
		roots.WithMaxIter(c.maxIter),
		roots.WithStep(c.step),
	}
}

func requireFlag(flagName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("-%s: %w", flagName, errMissingFlag)
	}
	return nil
}

func decodeJSON(flagName, src string, dst any) error {
	if err := requireFlag(flagName, src); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(src), dst); err != nil {
		return fmt.Errorf("-%s: %w", flagName, err)
	}
	return nil
}

func (c *config) points() (xs, ys []float64, err error) {
	if err = decodeJSON("x", c.xs, &xs); err != nil {
		return nil, nil, err
	}
	if err = decodeJSON("y", c.ys, &ys); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

func runIsolate(cfg *config, stdout io.Writer, log *slog.Logger) error {
	if err := requireFlag("f", cfg.f); err != nil {
		return err
	}
	f, err := expr.Compile(cfg.f)
	if err != nil {
		return err
	}
	br, ok, err := roots.Isolate(f, cfg.a, cfg.b, cfg.rootOptions()...)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(stdout, "no sign change in [%g, %g] with step %g\n", cfg.a, cfg.b, cfg.step)
		return nil
	}
	log.Debug("bracket", "a", br.A, "b", br.B)
	fmt.Fprintf(stdout, "bracket [%.6f, %.6f]\n", br.A, br.B)
	return nil
}

// runBracketing isolates a bracket on [a,b] before running solve on it.
func runBracketing(solve func(fn scalar.Func, a, b float64, opts ...roots.Option) (float64, []roots.BracketStep, error)) method {
	return func(cfg *config, stdout io.Writer, log *slog.Logger) error {
		if err := requireFlag("f", cfg.f); err != nil {
			return err
		}
		f, err := expr.Compile(cfg.f)
		if err != nil {
			return err
		}
		br, ok, err := roots.Isolate(f, cfg.a, cfg.b, cfg.rootOptions()...)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("[%g, %g] with step %g: %w", cfg.a, cfg.b, cfg.step, errNoBracket)
		}
		log.Info("bracket isolated", "a", br.A, "b", br.B)

		root, steps, err := solve(f, br.A, br.B, cfg.rootOptions()...)
		return finishRoot(cfg, stdout, log, root, roots.Records(steps), err)
	}
}

func runNewton(cfg *config, stdout io.Writer, log *slog.Logger) error {
	if err := requireFlag("f", cfg.f); err != nil {
		return err
	}
	p, err := expr.CompileWithDerivative(cfg.f)
	if err != nil {
		return err
	}
	root, steps, err := roots.NewtonRaphson(p, cfg.x0, cfg.rootOptions()...)
	return finishRoot(cfg, stdout, log, root, roots.Records(steps), err)
}

func runSecant(cfg *config, stdout io.Writer, log *slog.Logger) error {
	if err := requireFlag("f", cfg.f); err != nil {
		return err
	}
	f, err := expr.Compile(cfg.f)
	if err != nil {
		return err
	}
	root, steps, err := roots.Secant(f, cfg.x0, cfg.x1, cfg.rootOptions()...)
	return finishRoot(cfg, stdout, log, root, roots.Records(steps), err)
}

func runFixedPoint(cfg *config, stdout io.Writer, log *slog.Logger) error {
	if err := requireFlag("g", cfg.g); err != nil {
		return err
	}
	g, err := expr.Compile(cfg.g)
	if err != nil {
		return err
	}
	x, steps, err := roots.FixedPoint(g, cfg.x0, cfg.rootOptions()...)
	return finishRoot(cfg, stdout, log, x, roots.Records(steps), err)
}

// finishRoot prints the log collected so far even when the solver failed,
// then the result, then writes the optional charts.
func finishRoot(cfg *config, stdout io.Writer, log *slog.Logger, root float64, records []roots.Record, solveErr error) error {
	log.Debug("solver finished", "iterations", len(records), "err", solveErr)
	if err := report.Table(stdout, records); err != nil {
		return err
	}
	if solveErr != nil {
		return solveErr
	}
	fmt.Fprintf(stdout, "root = %.6f after %d iterations\n", root, len(records))

	if len(records) == 0 {
		if cfg.plotPath != "" || cfg.htmlPath != "" {
			log.Warn("no iterations to chart")
		}
		return nil
	}
	if cfg.plotPath != "" {
		if err := writeFile(cfg.plotPath, func(w io.Writer) error {
			return report.ConvergencePNG(w, cfg.f+cfg.g, records)
		}); err != nil {
			return err
		}
		log.Info("wrote plot", "path", cfg.plotPath)
	}
	if cfg.htmlPath != "" {
		if err := writeFile(cfg.htmlPath, func(w io.Writer) error {
			return report.ConvergenceHTML(w, cfg.f+cfg.g, records)
		}); err != nil {
			return err
		}
		log.Info("wrote chart", "path", cfg.htmlPath)
	}

	return nil
}

func writeFile(path string, render func(io.Writer) error) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	return render(fh)
}

func runGauss(cfg *config, stdout io.Writer, log *slog.Logger) error {
	var (
		a [][]float64
		b []float64
	)
	if err := decodeJSON("A", cfg.matA, &a); err != nil {
		return err
	}
	if err := decodeJSON("B", cfg.vecB, &b); err != nil {
		return err
	}
	log.Debug("system", "rows", len(a), "rhs", len(b))

	x, reduced, err := linsys.SolveRows(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "reduced [U | c]:")
	if err = report.Matrix(stdout, reduced); err != nil {
		return err
	}
	for i, v := range x {
		fmt.Fprintf(stdout, "x%d = %.6f\n", i+1, v)
	}
	return nil
}

func runLagrange(cfg *config, stdout io.Writer, _ *slog.Logger) error {
	xs, ys, err := cfg.points()
	if err != nil {
		return err
	}
	v, err := interp.Lagrange(xs, ys, cfg.at)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "P(%g) = %.6f\n", cfg.at, v)
	return nil
}

func runDividedDifferences(cfg *config, stdout io.Writer, _ *slog.Logger) error {
	xs, ys, err := cfg.points()
	if err != nil {
		return err
	}
	v, table, err := interp.Newton(xs, ys, cfg.at)
	if err != nil {
		return err
	}
	if err = report.DividedDifferences(stdout, table); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "P(%g) = %.6f\n", cfg.at, v)
	return nil
}

func runLeastSquares(cfg *config, stdout io.Writer, log *slog.Logger) error {
	xs, ys, err := cfg.points()
	if err != nil {
		return err
	}
	p, err := fit.LeastSquares(xs, ys, cfg.degree)
	if err != nil {
		return err
	}
	log.Debug("fit", "degree", p.Degree(), "points", len(xs))
	fmt.Fprintf(stdout, "P(x) = %s\n", p)
	return nil
}

func runQuadrature(rule func(f scalar.Func, a, b float64, n int) (float64, error)) method {
	return func(cfg *config, stdout io.Writer, log *slog.Logger) error {
		if err := requireFlag("f", cfg.f); err != nil {
			return err
		}
		f, err := expr.Compile(cfg.f)
		if err != nil {
			return err
		}
		v, err := rule(f, cfg.a, cfg.b, cfg.n)
		if err != nil {
			return err
		}
		log.Debug("integrated", "a", cfg.a, "b", cfg.b, "n", cfg.n)
		fmt.Fprintf(stdout, "integral = %.6f\n", v)
		return nil
	}
}
