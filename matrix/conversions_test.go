package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numlab/matrix"
)

// TestGonumRoundTrip converts both ways and checks independence of storage.
func TestGonumRoundTrip(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	r, c := g.Dims()
	assert.Equal(t, [2]int{3, 2}, [2]int{r, c})
	g.Set(0, 0, 99)
	v, _ := a.At(0, 0)
	assert.Equal(t, 1.0, v, "ToGonum copies")

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{99, 2}, {3, 4}, {5, 6}}, back.ToRows())

	// Generic path and a transposed gonum view.
	g2, err := matrix.ToGonum(rowsOnly{a})
	require.NoError(t, err)
	tr, err := matrix.FromGonum(g2.T())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, tr.ToRows())
}

func TestGonumErrors(t *testing.T) {
	_, err := matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(mat.NewDense(1, 2, []float64{1, math.NaN()}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	v, err := matrix.VecFromGonum(mat.NewVecDense(3, []float64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, v)
	_, err = matrix.VecFromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
