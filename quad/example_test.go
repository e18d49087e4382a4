package quad_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/quad"
)

func ExampleSimpson13() {
	f, _ := expr.Compile("x^2")
	tr, _ := quad.Trapezoid(f, 0, 1, 4)
	si, _ := quad.Simpson13(f, 0, 1, 4)
	fmt.Printf("trapezoid %.6f\nsimpson   %.6f\n", tr, si)

	_, err := quad.Simpson13(f, 0, 1, 5)
	fmt.Println(err)
	// Output:
	// trapezoid 0.343750
	// simpson   0.333333
	// Simpson13: n=5: quad: Simpson 1/3 needs an even number of subintervals
}
