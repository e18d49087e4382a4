package fit_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/numlab/fit"
	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/numerr"
)

func TestLine_ExactData(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7}

	p, err := fit.Line(x, y)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, p.Coeffs, 1e-10)
	assert.Equal(t, 1, p.Degree())
	assert.Equal(t, "1.0000 + 2.0000x", p.String())
}

// TestParabola_RecoversQuadratic fits exact y = 1 − 2x + 0.5x².
func TestParabola_RecoversQuadratic(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2, 3}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 1 - 2*v + 0.5*v*v
	}

	p, err := fit.Parabola(x, y)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, -2, 0.5}, p.Coeffs, 1e-9)
	assert.Equal(t, "1.0000 + -2.0000x + 0.5000x^2", p.String())
	for i := range x {
		assert.InDelta(t, y[i], p.Eval(x[i]), 1e-9)
	}
}

// TestLine_MatchesGonumRegression compares noisy data with stat.LinearRegression.
func TestLine_MatchesGonumRegression(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x := make([]float64, 40)
	y := make([]float64, 40)
	for i := range x {
		x[i] = float64(i) / 4
		y[i] = 0.7*x[i] - 3 + rng.NormFloat64()*0.2
	}

	p, err := fit.Line(x, y)
	require.NoError(t, err)
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	assert.InDelta(t, alpha, p.Coeffs[0], 1e-9)
	assert.InDelta(t, beta, p.Coeffs[1], 1e-9)
}

// TestLeastSquares_MatchesQR solves the overdetermined Vandermonde system
// with gonum's QR-based least squares.
func TestLeastSquares_MatchesQR(t *testing.T) {
	x := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}
	y := []float64{1.1, 1.4, 2.3, 3.9, 6.2, 9.0, 12.8}
	const degree = 3

	p, err := fit.LeastSquares(x, y, degree)
	require.NoError(t, err)

	v := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		for j := 0; j <= degree; j++ {
			v.Set(i, j, math.Pow(xi, float64(j)))
		}
	}
	var c mat.VecDense
	require.NoError(t, c.SolveVec(v, mat.NewVecDense(len(y), y)))
	assert.True(t, floats.EqualApprox(c.RawVector().Data, p.Coeffs, 1e-8), "%v vs %v", c.RawVector().Data, p.Coeffs)
}

func TestLeastSquares_DegreeZeroIsMean(t *testing.T) {
	p, err := fit.LeastSquares([]float64{1, 2, 3}, []float64{2, 4, 9}, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5}, p.Coeffs, 1e-12)
	assert.Equal(t, "5.0000", p.String())
}

func TestLeastSquares_Interpolates(t *testing.T) {
	// n == degree+1: the fit passes through every point.
	x := []float64{0, 1, 2}
	y := []float64{1, 0, 5}
	p, err := fit.LeastSquares(x, y, 2)
	require.NoError(t, err)
	for i := range x {
		assert.InDelta(t, y[i], p.Eval(x[i]), 1e-9)
	}
}

func TestLeastSquares_Errors(t *testing.T) {
	_, err := fit.LeastSquares([]float64{1}, []float64{1}, -1)
	require.ErrorIs(t, err, fit.ErrBadDegree)
	require.ErrorIs(t, err, numerr.ErrValidation)

	_, err = fit.LeastSquares([]float64{1, 2}, []float64{1}, 1)
	require.ErrorIs(t, err, fit.ErrLengthMismatch)

	_, err = fit.Parabola([]float64{1, 2}, []float64{1, 2})
	require.ErrorIs(t, err, fit.ErrInsufficientPoints)

	_, err = fit.Line(nil, nil)
	require.ErrorIs(t, err, fit.ErrInsufficientPoints)

	// All x equal: the normal matrix [[2,2],[2,2]] is singular.
	_, err = fit.Line([]float64{1, 1}, []float64{0, 1})
	require.ErrorIs(t, err, fit.ErrIllConditioned)
	require.ErrorIs(t, err, linsys.ErrSingular)
	require.ErrorIs(t, err, numerr.ErrNumericFailure)
}

func TestPolynomial_EvalAndString(t *testing.T) {
	p := fit.Polynomial{Coeffs: []float64{1, 0, -3, 2}}
	assert.Equal(t, 3, p.Degree())
	assert.Equal(t, 1-3*4.0+2*8, p.Eval(2))
	assert.Equal(t, "1.0000 + 0.0000x + -3.0000x^2 + 2.0000x^3", p.String())

	var empty fit.Polynomial
	assert.Equal(t, -1, empty.Degree())
	assert.Equal(t, 0.0, empty.Eval(3))
	assert.Equal(t, "0", empty.String())
}

// vandermonde builds V[i][j] = x_i^j for j = 0..degree.
func vandermonde(t *testing.T, x []float64, degree int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, len(x))
	for i, xi := range x {
		rows[i] = make([]float64, degree+1)
		for j := range rows[i] {
			rows[i][j] = math.Pow(xi, float64(j))
		}
	}
	v, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return v
}

// TestNormalEquations_MatchVandermonde checks A = VᵀV and B = Vᵀy.
func TestNormalEquations_MatchVandermonde(t *testing.T) {
	x := []float64{-1.5, -0.25, 0, 0.5, 1, 2.75, 3}
	y := []float64{4, 1.5, 1, 0.75, 2, 9.5, 11}
	for degree := 0; degree <= 3; degree++ {
		a, b, err := fit.NormalEquations(x, y, degree)
		require.NoError(t, err)

		v := vandermonde(t, x, degree)
		vt, err := matrix.Transpose(v)
		require.NoError(t, err)
		want, err := matrix.Mul(vt, v)
		require.NoError(t, err)
		ok, err := matrix.AllClose(a, want, 1e-12, 1e-12)
		require.NoError(t, err)
		assert.True(t, ok, "degree %d:\n%v\nvs\n%v", degree, a, want)

		wantB, err := matrix.MatVec(vt, y)
		require.NoError(t, err)
		ok, err = matrix.VecAllClose(b, wantB, 1e-12, 1e-12)
		require.NoError(t, err)
		assert.True(t, ok, "degree %d: %v vs %v", degree, b, wantB)
	}

	_, _, err := fit.NormalEquations(x, y[:3], 1)
	require.ErrorIs(t, err, fit.ErrLengthMismatch)
	_, _, err = fit.NormalEquations(x[:2], y[:2], 2)
	require.ErrorIs(t, err, fit.ErrInsufficientPoints)
}
