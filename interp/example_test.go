package interp_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/interp"
)

func ExampleNewton() {
	x := []float64{0, 1, 2}
	y := []float64{1, 2.718, 7.389}

	p, table, _ := interp.Newton(x, y, 0.5)
	fmt.Printf("P(0.5) = %.6f\n", p)
	for j := 0; j < table.Len(); j++ {
		fmt.Printf("order %d: %.4f\n", j, table.Order(j))
	}
	// Output:
	// P(0.5) = 1.489875
	// order 0: [1.0000 2.7180 7.3890]
	// order 1: [1.7180 4.6710]
	// order 2: [1.4765]
}
