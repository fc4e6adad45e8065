// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and an independent reference product.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mmult/matrix"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a Dense from literal rows or fails the test.
func mustFromRows[T matrix.Scalar](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// randDense fills an r×c matrix with values in [1, 100) from a seeded source.
func randDense(r, c int, seed int64) *matrix.Dense[float64] {
	rng := rand.New(rand.NewSource(seed))
	m := matrix.NewDense[float64](r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.Set(i, j, 1+rng.Float64()*99)
		}
	}

	return m
}

// naiveMul is the textbook i→j→k product through the checked accessors.
// It shares no code with the package kernel and serves as the reference.
func naiveMul(t testing.TB, a, b *matrix.Dense[float64]) *matrix.Dense[float64] {
	t.Helper()
	require.Equal(t, a.Cols(), b.Rows(), "naiveMul: inner dimension")
	out := matrix.NewDense[float64](a.Rows(), b.Cols())
	var i, j, k int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			var sum float64
			for k = 0; k < a.Cols(); k++ {
				av, err := a.AtChecked(i, k)
				require.NoError(t, err)
				bv, err := b.AtChecked(k, j)
				require.NoError(t, err)
				sum += av * bv
			}
			require.NoError(t, out.SetChecked(i, j, sum))
		}
	}

	return out
}
