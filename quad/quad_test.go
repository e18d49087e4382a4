package quad_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/integrate/testquad"

	"github.com/katalvlaran/numlab/numerr"
	"github.com/katalvlaran/numlab/quad"
	"github.com/katalvlaran/numlab/scalar"
)

var square = scalar.Of(func(x float64) float64 { return x * x })

// grid samples f on n+1 uniform nodes for the gonum reference rules.
func grid(f func(float64) float64, a, b float64, n int) (xs, fs []float64) {
	xs = make([]float64, n+1)
	fs = make([]float64, n+1)
	h := (b - a) / float64(n)
	for i := range xs {
		xs[i] = a + float64(i)*h
		fs[i] = f(xs[i])
	}
	return xs, fs
}

func TestTrapezoid_SquareOnUnitInterval(t *testing.T) {
	// h²(b−a)/12·f'' = 1/(6n²) overestimate for x² on [0,1].
	for _, n := range []int{1, 2, 4, 10, 100} {
		got, err := quad.Trapezoid(square, 0, 1, n)
		require.NoError(t, err)
		assert.InDelta(t, 1.0/3+1/(6*float64(n*n)), got, 1e-12, "n=%d", n)
	}
}

func TestSimpson13_ExactForCubics(t *testing.T) {
	cubic := scalar.Of(func(x float64) float64 { return 4*x*x*x - x + 2 })
	got, err := quad.Simpson13(cubic, -1, 2, 2)
	require.NoError(t, err)
	// ∫_{-1}^{2} 4x³ − x + 2 dx = 15 − 1.5 + 6
	assert.InDelta(t, 19.5, got, 1e-12)

	got, err = quad.Simpson13(square, 0, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, got, 1e-15)
}

// TestSimpson13_ConvergesFaster: for the same n Simpson's error on x² is
// below the trapezoid error.
func TestSimpson13_ConvergesFaster(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16} {
		tr, err := quad.Trapezoid(square, 0, 1, n)
		require.NoError(t, err)
		si, err := quad.Simpson13(square, 0, 1, n)
		require.NoError(t, err)
		assert.Less(t, math.Abs(si-1.0/3), math.Abs(tr-1.0/3), "n=%d", n)
	}
}

// TestQuadrature_MatchesGonum runs both rules over the testquad integrals and
// compares with gonum's sample-based rules on the same grid.
func TestQuadrature_MatchesGonum(t *testing.T) {
	integrals := []testquad.Integral{
		testquad.Constant(2.5),
		testquad.Poly(0),
		testquad.Poly(1),
		testquad.Poly(2),
		testquad.Poly(3),
		testquad.Sin(),
		testquad.XExpMinusX(),
		testquad.ExpOverX2Plus1(),
	}
	for _, in := range integrals {
		for _, n := range []int{2, 8, 64} {
			t.Run(fmt.Sprintf("%s/n=%d", in.Name, n), func(t *testing.T) {
				xs, fs := grid(in.F, in.A, in.B, n)
				f := scalar.Of(in.F)

				tr, err := quad.Trapezoid(f, in.A, in.B, n)
				require.NoError(t, err)
				assert.InDelta(t, integrate.Trapezoidal(xs, fs), tr, 1e-12)

				si, err := quad.Simpson13(f, in.A, in.B, n)
				require.NoError(t, err)
				assert.InDelta(t, integrate.Simpsons(xs, fs), si, 1e-10)
			})
		}
		// Both approach the analytic value as n grows.
		tr, _ := quad.Trapezoid(scalar.Of(in.F), in.A, in.B, 2048)
		si, _ := quad.Simpson13(scalar.Of(in.F), in.A, in.B, 256)
		assert.InDelta(t, in.Value, tr, 1e-5, in.Name)
		assert.InDelta(t, in.Value, si, 1e-8, in.Name)
	}
}

func TestQuadrature_ReversedAndEmptyInterval(t *testing.T) {
	fwd, _ := quad.Simpson13(square, 0, 1, 4)
	rev, err := quad.Simpson13(square, 1, 0, 4)
	require.NoError(t, err)
	assert.InDelta(t, -fwd, rev, 1e-15)

	zero, err := quad.Trapezoid(square, 2, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero)
}

func TestQuadrature_Errors(t *testing.T) {
	_, err := quad.Trapezoid(square, 0, 1, 0)
	require.ErrorIs(t, err, quad.ErrBadSubintervals)
	require.ErrorIs(t, err, numerr.ErrValidation)

	_, err = quad.Simpson13(square, 0, 1, -2)
	require.ErrorIs(t, err, quad.ErrBadSubintervals)

	_, err = quad.Simpson13(square, 0, 1, 3)
	require.ErrorIs(t, err, quad.ErrOddSubintervals)

	// log is undefined at 0: evaluation failures propagate.
	_, err = quad.Trapezoid(scalar.Of(math.Log), -1, 1, 4)
	require.ErrorIs(t, err, scalar.ErrDomain)
	require.ErrorIs(t, err, numerr.ErrEvaluation)

	_, err = quad.Simpson13(scalar.Of(math.Sqrt), -1, 1, 4)
	require.ErrorIs(t, err, scalar.ErrDomain)

	_, err = quad.Trapezoid(nil, 0, 1, 4)
	require.ErrorIs(t, err, scalar.ErrInvalidFunction)
}
