// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for comparison tolerance and
// parallel multiplication. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by NearlyEqual.
	// |a-b| < DefaultEpsilon counts as equal.
	DefaultEpsilon = 0.005

	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers for MulParallel.
	DefaultWorkers = 0

	// DefaultMinParallelRows is the smallest number of output rows a worker
	// must receive before MulParallel splits the work at all.
	DefaultMinParallelRows = 16
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 0"
	panicMinRowsInvalid = "matrix: WithMinParallelRows: rows must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	workers int     // >= 0; 0 means GOMAXPROCS
	minRows int     // >= 1; DefaultMinParallelRows
}

// WithEpsilon sets the absolute tolerance used by NearlyEqual.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithWorkers bounds the number of goroutines MulParallel may use.
// Zero restores the default (GOMAXPROCS); negative values panic.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinParallelRows sets the minimum band height per worker.
// Products with fewer than 2*rows output rows run sequentially.
func WithMinParallelRows(rows int) Option {
	if rows < 1 {
		panic(panicMinRowsInvalid)
	}

	return func(o *Options) { o.minRows = rows }
}

// Epsilon returns the resolved comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Workers returns the resolved worker bound, with 0 expanded to GOMAXPROCS.
func (o Options) Workers() int {
	if o.workers == 0 {
		return runtime.GOMAXPROCS(0)
	}

	return o.workers
}

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		workers: DefaultWorkers,
		minRows: DefaultMinParallelRows,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
