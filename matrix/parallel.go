// SPDX-License-Identifier: MIT

package matrix

import "golang.org/x/sync/errgroup"

// MulParallel computes lhs × rhs with output rows split into contiguous bands,
// one band per worker. Each worker runs the same kernel as Mul on rows no
// other worker touches, so the result is bit-identical to Mul.
//
// Options:
//   - WithWorkers(n): upper bound on goroutines (default GOMAXPROCS).
//   - WithMinParallelRows(n): minimum band height; smaller products run
//     sequentially on the calling goroutine.
//
// Errors:
//   - *DimensionError (matches ErrDimensionMismatch), as Mul.
func MulParallel[T Scalar](lhs, rhs *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := validateMulCompatible(opMul, lhs, rhs); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	res := NewDense[T](lhs.r, rhs.c)

	bands := bandCount(lhs.r, o.Workers(), o.minRows)
	if bands <= 1 {
		mulRows(res, lhs, rhs, 0, lhs.r)
		return res, nil
	}

	var g errgroup.Group // one goroutine per band; bands <= Workers()
	per, rem := lhs.r/bands, lhs.r%bands
	start := 0
	for w := 0; w < bands; w++ {
		end := start + per
		if w < rem { // spread the remainder over the first bands
			end++
		}
		i0, i1 := start, end
		g.Go(func() error {
			mulRows(res, lhs, rhs, i0, i1)
			return nil
		})
		start = end
	}
	_ = g.Wait() // workers never fail

	return res, nil
}

// bandCount picks how many row bands to cut: at most workers, and never so
// many that a band drops below minRows.
func bandCount(rows, workers, minRows int) int {
	bands := rows / minRows
	if bands > workers {
		bands = workers
	}
	if bands < 1 {
		bands = 1
	}

	return bands
}
