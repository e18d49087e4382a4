package linsys_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/linsys"
)

func ExampleSolveRows() {
	x, reduced, err := linsys.SolveRows([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("x = [%.4f %.4f]\n", x[0], x[1])
	fmt.Print(reduced)
	// Output:
	// x = [0.8000 1.4000]
	// [2, 1, 3]
	// [0, 2.5, 3.5]
}

func ExampleSolveRows_singular() {
	_, _, err := linsys.SolveRows([][]float64{{1, 2}, {2, 4}}, []float64{3, 6})
	fmt.Println(err)
	// Output: Solve: column 1: linsys: singular or ill-conditioned matrix (zero pivot)
}
