package roots_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/roots"
)

// ExampleIsolate scans for a sign change and refines it by bisection.
func ExampleIsolate() {
	f, _ := expr.Compile("x^2 - 4")
	br, ok, _ := roots.Isolate(f, 0, 10)
	fmt.Println(ok, br.A, br.B)

	r, _, _ := roots.Bisection(f, 0, 3, roots.WithTolerance(1e-9))
	fmt.Printf("%.6f\n", r)
	// Output:
	// true 1 2
	// 2.000000
}

// ExampleNewtonRaphson uses a symbolic derivative.
func ExampleNewtonRaphson() {
	p, _ := expr.CompileWithDerivative("x^2 - 2")
	r, steps, _ := roots.NewtonRaphson(p, 1)
	fmt.Printf("%.8f after %d iterations\n", r, len(steps))
	// Output: 1.41421356 after 5 iterations
}

// ExampleFixedPoint shows the hard iteration cap.
func ExampleFixedPoint() {
	g, _ := expr.Compile("3 - x")
	_, steps, err := roots.FixedPoint(g, 1, roots.WithMaxIter(4))
	fmt.Println(len(steps), err != nil)
	// Output: 4 true
}
