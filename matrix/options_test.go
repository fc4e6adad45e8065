// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/katalvlaran/mmult/matrix"
	"github.com/stretchr/testify/require"
)

// TestOptionsDefaults verifies the documented defaults.
func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, runtime.GOMAXPROCS(0), o.Workers())
}

// TestOptionsLastWriterWins applies setters in order.
func TestOptionsLastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithEpsilon(0.1), matrix.WithEpsilon(0.2), matrix.WithWorkers(3))
	require.Equal(t, 0.2, o.Epsilon())
	require.Equal(t, 3, o.Workers())

	o = matrix.NewOptions(matrix.WithWorkers(3), matrix.WithWorkers(0))
	require.Equal(t, runtime.GOMAXPROCS(0), o.Workers())
}

// TestOptionsPanicOnNonsense ensures invalid option values are programmer errors.
func TestOptionsPanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithWorkers(-2) })
	require.Panics(t, func() { matrix.WithMinParallelRows(0) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
