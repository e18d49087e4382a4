package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// ExampleAugment shows the [A | b] layout used by Gaussian elimination.
func ExampleAugment() {
	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
	aug, _ := matrix.Augment(a, []float64{3, 5})
	_ = aug.SwapRows(0, 1)
	fmt.Print(aug)
	// Output:
	// [1, 3, 5]
	// [2, 1, 3]
}
