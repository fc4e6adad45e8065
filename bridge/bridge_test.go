// SPDX-License-Identifier: MIT
package bridge_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/mmult/bridge"
	"github.com/katalvlaran/mmult/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestFromGonumCopies checks element-by-element transfer.
func TestFromGonumCopies(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	dst := matrix.NewDense[float64](2, 3)

	require.NoError(t, bridge.FromGonum(src, dst))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, dst.Data())
}

// TestFromGonumShapeMismatch ensures the precheck fails before any write.
func TestFromGonumShapeMismatch(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	dst := matrix.NewFilled(3, 2, 7.0)

	err := bridge.FromGonum(src, dst)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "lhs: 2x3 rhs: 3x2")
	require.Equal(t, []float64{7, 7, 7, 7, 7, 7}, dst.Data())
}

// TestToGonumRoundTrip moves data out and back in.
func TestToGonumRoundTrip(t *testing.T) {
	m := matrix.NewDense[float64](3, 2)
	m.Assign(1.5, 2, 3, 4, 5, 6.25)

	g := bridge.ToGonum(m)
	r, c := g.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, 6.25, g.At(2, 1))

	back := bridge.NewFromGonum(g)
	require.True(t, matrix.Equal(m, back))

	require.Nil(t, bridge.ToGonum(matrix.NewDense[float64](0, 3)))
}

// TestProductAgreesWithGonum cross-checks matrix.Mul against gonum's product.
func TestProductAgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{4, 31, 64} {
		ga := bridge.Uniform(n, n+3, 1, 100, rng)
		gb := bridge.Uniform(n+3, n, 1, 100, rng)

		var ref mat.Dense
		ref.Mul(ga, gb)

		got, err := matrix.Mul(bridge.NewFromGonum(ga), bridge.NewFromGonum(gb))
		require.NoError(t, err)

		ok, err := bridge.EqualGonum(&ref, got, matrix.DefaultEpsilon)
		require.NoError(t, err)
		require.True(t, ok, "n=%d", n)

		// Same check through go-cmp with a relative tolerance on the raw data.
		require.True(t, cmp.Equal(ref.RawMatrix().Data, got.Data(), cmpopts.EquateApprox(1e-12, 0)))
	}
}

// TestEqualGonum covers tolerance and shape errors.
func TestEqualGonum(t *testing.T) {
	ref := mat.NewDense(1, 2, []float64{1, 2})
	m := matrix.NewDense[float64](1, 2)
	m.Assign(1.004, 2)

	ok, err := bridge.EqualGonum(ref, m, matrix.DefaultEpsilon)
	require.NoError(t, err)
	require.True(t, ok)

	m.Set(0, 1, 2.006)
	ok, err = bridge.EqualGonum(ref, m, matrix.DefaultEpsilon)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = bridge.EqualGonum(ref, matrix.NewDense[float64](2, 1), matrix.DefaultEpsilon)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestUniformRange keeps every sample inside [lo, hi).
func TestUniformRange(t *testing.T) {
	g := bridge.Uniform(16, 16, 1, 100, rand.New(rand.NewSource(7)))
	for _, v := range g.RawMatrix().Data {
		require.GreaterOrEqual(t, v, 1.0)
		require.Less(t, v, 100.0)
	}
}
