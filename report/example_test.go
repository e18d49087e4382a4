package report_test

import (
	"os"

	"github.com/katalvlaran/numlab/report"
	"github.com/katalvlaran/numlab/roots"
	"github.com/katalvlaran/numlab/scalar"
)

func ExampleTable() {
	g := scalar.Of(func(x float64) float64 { return (x + 2/x) / 2 })
	_, steps, _ := roots.FixedPoint(g, 1, roots.WithTolerance(1e-3))
	_ = report.Table(os.Stdout, roots.Records(steps))
	// Output:
	// iter       x_i    g(x_i)     x_i+1  |x_i+1 - x_i|
	//      1  1.000000  1.500000  1.500000       0.500000
	//      2  1.500000  1.416667  1.416667       0.083333
	//      3  1.416667  1.414216  1.414216       0.002451
	//      4  1.414216  1.414214  1.414214       0.000002
}
