// Package numlab is a small toolkit of classic numerical methods with
// inspectable iteration logs.
//
// What is inside:
//
//	• Root finding: bracket isolation, bisection, false position,
//	  Newton-Raphson, secant, fixed-point iteration
//	• Linear systems: Gaussian elimination with partial pivoting
//	• Interpolation: Lagrange, Newton divided differences
//	• Curve fitting: least-squares polynomials via normal equations
//	• Quadrature: composite trapezoid and Simpson 1/3 rules
//
// Every iterative method returns its result together with the full step log,
// so a run can be printed as a table or charted afterwards.
//
// Packages:
//
//	numerr/  error categories shared by every package
//	scalar/  f(x) and (f, f') function types, central differences
//	expr/    expression parser with symbolic differentiation
//	roots/   root finders and their iteration records
//	matrix/  dense row-major matrix, validators, gonum converters
//	linsys/  Gaussian elimination, residuals
//	interp/  Lagrange and Newton interpolation
//	fit/     least-squares polynomials
//	quad/    composite quadrature rules
//	report/  text tables, PNG and HTML convergence charts
//	cmd/numlab  command-line front end
//
// Quick example:
//
//	f, _ := expr.CompileWithDerivative("x^2 - 2")
//	r, steps, err := roots.NewtonRaphson(f, 1)
//	// r ≈ 1.41421356 after 5 steps
//	_ = report.Table(os.Stdout, roots.Records(steps))
//
// All computation is pure Go, float64 throughout; gonum is used for
// cross-checks and conversions, gonum/plot and go-echarts for charts.
package numlab
