// SPDX-License-Identifier: MIT

// Package bench is the comparison and timing driver for package matrix.
//
// A Runner builds two operands (random or loaded from snapshots), optionally
// prints a walkthrough of the core API, cross-checks matrix.Mul against
// gonum, and times gonum, matrix.Mul and matrix.MulParallel. It holds no
// algorithmic content; everything goes through the public matrix API.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/katalvlaran/mmult/bridge"
	"github.com/katalvlaran/mmult/logging"
	"github.com/katalvlaran/mmult/matrix"
	"github.com/katalvlaran/mmult/snapshot"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// printLimit is the largest product row count printed in full by CheckEqual.
const printLimit = 15

// ErrEmptyOperand indicates a loaded snapshot had no elements.
var ErrEmptyOperand = errors.New("bench: empty operand")

// Operands pairs each core matrix with its gonum copy.
type Operands struct {
	A, B   *matrix.Dense[float64]
	GA, GB *mat.Dense
}

// PerfResult holds the mean wall time per product for each engine.
type PerfResult struct {
	MSize     int
	LoopCount int
	Gonum     time.Duration
	Serial    time.Duration
	Parallel  time.Duration
}

// Runner executes the phases selected by its Config.
type Runner struct {
	cfg     Config
	log     *zap.Logger
	out     io.Writer
	rng     *rand.Rand
	metrics *Metrics
}

// NewRunner returns a Runner writing human-readable output to out.
// A nil logger is replaced by a no-op logger.
func NewRunner(cfg Config, log *zap.Logger, out io.Writer) *Runner {
	return &Runner{
		cfg:     cfg,
		log:     logging.OrNop(log),
		out:     out,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		metrics: NewMetrics(),
	}
}

// Metrics exposes the runner's collectors.
func (r *Runner) Metrics() *Metrics { return r.metrics }

// Run executes every enabled phase in order: demo, operand preparation,
// equality check, perf loop, output snapshot, metrics export.
// ctx is checked between phases and between timed iterations; a single
// product is never interrupted.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.cfg.Validate(); err != nil {
		return err
	}
	if r.cfg.BlockSize > 0 {
		r.log.Warn("block_size is ignored; the (i,k,j) kernel does not tile",
			zap.Int("block_size", r.cfg.BlockSize))
	}

	if r.cfg.All {
		if err := r.Demo(); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ops, err := r.Prepare()
	if err != nil {
		return err
	}
	r.log.Info("operands ready",
		zap.String("a", ops.A.DimString()),
		zap.String("b", ops.B.DimString()))

	if r.cfg.All || r.cfg.TestEqual {
		if _, err := r.CheckEqual(ops); err != nil {
			return err
		}
	}
	if r.cfg.All || r.cfg.PerfTest {
		res, err := r.Perf(ctx, ops)
		if err != nil {
			return err
		}
		r.log.Info("perf finished",
			zap.Int("m_size", res.MSize),
			zap.Int("loop_count", res.LoopCount),
			zap.Duration("gonum", res.Gonum),
			zap.Duration("mmatrix", res.Serial),
			zap.Duration("parallel", res.Parallel))
	}

	if r.cfg.Output != "" {
		if err := r.saveProduct(ops); err != nil {
			return err
		}
	}
	if r.cfg.MetricsOut != "" {
		if err := r.metrics.WriteTextfile(r.cfg.MetricsOut); err != nil {
			return err
		}
		r.log.Info("metrics written", zap.String("path", r.cfg.MetricsOut))
	}

	return nil
}

// Prepare builds A (MSize×NSize) and B (NSize×MSize), either from the
// configured snapshots or from uniform random values. Random operands are
// generated as gonum matrices and copied into the core type through the
// shape-checked bridge.
func (r *Runner) Prepare() (*Operands, error) {
	a, ga, err := r.operand(r.cfg.InputA, r.cfg.MSize, r.cfg.NSize)
	if err != nil {
		return nil, fmt.Errorf("bench: operand A: %w", err)
	}
	b, gb, err := r.operand(r.cfg.InputB, a.Cols(), a.Rows())
	if err != nil {
		return nil, fmt.Errorf("bench: operand B: %w", err)
	}

	return &Operands{A: a, B: b, GA: ga, GB: gb}, nil
}

func (r *Runner) operand(path string, rows, cols int) (*matrix.Dense[float64], *mat.Dense, error) {
	if path != "" {
		m, err := snapshot.Load(path)
		if err != nil {
			return nil, nil, err
		}
		if m.Len() == 0 {
			return nil, nil, fmt.Errorf("%s: %w", path, ErrEmptyOperand)
		}
		r.log.Debug("operand loaded", zap.String("path", path), zap.String("dim", m.DimString()))

		return m, bridge.ToGonum(m), nil
	}

	g := bridge.Uniform(rows, cols, r.cfg.Lo, r.cfg.Hi, r.rng)
	m := matrix.NewDense[float64](rows, cols)
	if err := bridge.FromGonum(g, m); err != nil {
		return nil, nil, err
	}

	return m, g, nil
}

// CheckEqual multiplies the operands with gonum and matrix.Mul and reports
// whether the products agree within matrix.DefaultEpsilon. Small products
// are printed in full.
func (r *Runner) CheckEqual(ops *Operands) (bool, error) {
	var ref mat.Dense
	if err := safeGonumMul(&ref, ops.GA, ops.GB); err != nil {
		return false, err
	}
	got, err := matrix.Mul(ops.A, ops.B)
	if err != nil {
		return false, fmt.Errorf("bench: check equal: %w", err)
	}

	if got.Rows() < printLimit {
		fmt.Fprintf(r.out, "%v\n", mat.Formatted(&ref))
		fmt.Fprintln(r.out, got)
	}
	equal, err := bridge.EqualGonum(&ref, got, matrix.DefaultEpsilon)
	if err != nil {
		return false, fmt.Errorf("bench: check equal: %w", err)
	}
	fmt.Fprintln(r.out, "multiplication with gonum and MMatrix")
	fmt.Fprintf(r.out, "equal %t\n", equal)

	r.metrics.setCrossCheck(equal)
	if !equal {
		r.log.Warn("cross-check mismatch", zap.String("dim", got.DimString()))
	}

	return equal, nil
}

// Perf times LoopCount(A.Rows()) products per engine and prints one summary
// line with the mean microseconds per product.
func (r *Runner) Perf(ctx context.Context, ops *Operands) (PerfResult, error) {
	m := ops.A.Rows()
	loops := LoopCount(m)
	res := PerfResult{MSize: m, LoopCount: loops}

	var (
		err error
		ref mat.Dense
	)
	res.Gonum, err = r.timeLoop(ctx, EngineGonum, m, loops, func() error {
		ref.Reset()
		return safeGonumMul(&ref, ops.GA, ops.GB)
	})
	if err != nil {
		return res, err
	}
	res.Serial, err = r.timeLoop(ctx, EngineSerial, m, loops, func() error {
		_, mulErr := matrix.Mul(ops.A, ops.B)
		return mulErr
	})
	if err != nil {
		return res, err
	}
	res.Parallel, err = r.timeLoop(ctx, EngineParallel, m, loops, func() error {
		_, mulErr := matrix.MulParallel(ops.A, ops.B, matrix.WithWorkers(r.cfg.Workers))
		return mulErr
	})
	if err != nil {
		return res, err
	}

	fmt.Fprintf(r.out, "ikj, m_size, %d, loop_count, %d , %s, %d, %s, %d, %s, %d\n",
		m, loops,
		EngineGonum, res.Gonum.Microseconds(),
		EngineSerial, res.Serial.Microseconds(),
		EngineParallel, res.Parallel.Microseconds())

	return res, nil
}

// timeLoop runs fn loops times, observing each iteration, and returns the
// mean duration.
func (r *Runner) timeLoop(ctx context.Context, engine string, size, loops int, fn func() error) (time.Duration, error) {
	var total time.Duration
	for i := 0; i < loops; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		start := time.Now()
		if err := fn(); err != nil {
			return 0, fmt.Errorf("bench: %s: %w", engine, err)
		}
		d := time.Since(start)
		total += d
		r.metrics.observe(engine, size, d.Seconds())
	}

	return total / time.Duration(loops), nil
}

func (r *Runner) saveProduct(ops *Operands) error {
	c, err := matrix.MulParallel(ops.A, ops.B, matrix.WithWorkers(r.cfg.Workers))
	if err != nil {
		return fmt.Errorf("bench: output: %w", err)
	}
	if err := snapshot.Save(r.cfg.Output, c); err != nil {
		return err
	}
	r.log.Info("product saved", zap.String("path", r.cfg.Output), zap.String("dim", c.DimString()))

	return nil
}

// safeGonumMul converts gonum's dimension panics into errors.
func safeGonumMul(dst *mat.Dense, a, b mat.Matrix) (err error) {
	defer func() {
		if p := recover(); p != nil {
			ar, ac := a.Dims()
			br, bc := b.Dims()
			err = fmt.Errorf("bench: gonum: %v: %w", p, matrix.NewDimensionError("Mul", ar, ac, br, bc))
		}
	}()
	dst.Mul(a, b)

	return nil
}
