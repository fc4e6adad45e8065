// SPDX-License-Identifier: MIT

// Package bridge moves data between gonum's mat package and matrix.Dense.
//
// gonum serves as the independent reference implementation that products
// computed by matrix.Mul are checked against. Every copy is preceded by a
// shape check that reports the same *matrix.DimensionError kind as Mul.
package bridge

import (
	"math/rand"

	"github.com/katalvlaran/mmult/matrix"
	"gonum.org/v1/gonum/mat"
)

// Operation tags for DimensionError.Op.
const (
	opCopy    = "Copy"
	opCompare = "Compare"
)

// CheckShape returns a *matrix.DimensionError when src and dst differ in shape.
func CheckShape(src mat.Matrix, dst *matrix.Dense[float64]) error {
	return checkShape(opCopy, src, dst)
}

func checkShape(op string, src mat.Matrix, dst *matrix.Dense[float64]) error {
	sr, sc := src.Dims()
	dr, dc := dst.Shape()
	if sr != dr || sc != dc {
		return matrix.NewDimensionError(op, sr, sc, dr, dc)
	}

	return nil
}

// FromGonum copies src into dst element by element.
// dst must already have src's shape; on mismatch nothing is written.
func FromGonum(src mat.Matrix, dst *matrix.Dense[float64]) error {
	if err := CheckShape(src, dst); err != nil {
		return err
	}
	r, c := src.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			dst.Set(i, j, src.At(i, j))
		}
	}

	return nil
}

// NewFromGonum allocates a Dense of src's shape and copies src into it.
func NewFromGonum(src mat.Matrix) *matrix.Dense[float64] {
	r, c := src.Dims()
	dst := matrix.NewDense[float64](r, c)
	_ = FromGonum(src, dst) // shapes match by construction

	return dst
}

// ToGonum copies m into a new *mat.Dense.
// gonum rejects zero-sized dense matrices, so an empty m yields nil.
func ToGonum(m *matrix.Dense[float64]) *mat.Dense {
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil
	}

	return mat.NewDense(r, c, m.Data())
}

// EqualGonum reports whether every element of m is within eps of ref.
// A shape mismatch is an error rather than false, matching the copy
// precheck.
func EqualGonum(ref mat.Matrix, m *matrix.Dense[float64], eps float64) (bool, error) {
	if err := checkShape(opCompare, ref, m); err != nil {
		return false, err
	}
	r, c := ref.Dims()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !matrix.Close(m.At(i, j), ref.At(i, j), eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Uniform returns a rows×cols gonum matrix with elements drawn uniformly
// from [lo, hi). rows and cols must be positive (gonum panics otherwise).
func Uniform(rows, cols int, lo, hi float64, rng *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	for idx := range data {
		data[idx] = lo + rng.Float64()*(hi-lo)
	}

	return mat.NewDense(rows, cols, data)
}
