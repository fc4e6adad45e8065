// SPDX-License-Identifier: MIT
package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		a, b      *Dense[float64]
		wantLeft  string
		wantRight string
	}{
		{"equal 2x3", NewDense[float64](2, 3), NewDense[float64](2, 3), "", ""},
		{"empty", &Dense[float64]{}, NewDense[float64](0, 0), "", ""},
		{"row mismatch", NewDense[float64](2, 3), NewDense[float64](3, 3), "2x3", "3x3"},
		{"col mismatch", NewDense[float64](2, 3), NewDense[float64](2, 4), "2x3", "2x4"},
		{"transposed", NewDense[float64](2, 3), NewDense[float64](3, 2), "2x3", "3x2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSameShape(opAdd, tc.a, tc.b)
			if tc.wantLeft == "" {
				require.NoError(t, err)
				return
			}
			var de *DimensionError
			require.True(t, errors.As(err, &de))
			require.Equal(t, opAdd, de.Op)
			require.Equal(t, tc.wantLeft, de.Left)
			require.Equal(t, tc.wantRight, de.Right)
		})
	}
}

// TestValidateMulCompatible checks that only the inner dimensions matter.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateMulCompatible(opMul, NewDense[int](2, 3), NewDense[int](3, 7)))
	require.NoError(t, validateMulCompatible(opMul, NewDense[int](5, 0), NewDense[int](0, 4)))

	err := validateMulCompatible(opMul, NewDense[int](3, 2), NewDense[int](3, 2))
	require.ErrorIs(t, err, ErrDimensionMismatch)
	require.EqualError(t, err, "matrix: Mul: dimension mismatch lhs: 3x2 rhs: 3x2")
}
