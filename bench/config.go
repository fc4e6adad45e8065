// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration value outside its legal range.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Defaults (single source of truth).
const (
	DefaultSize = 256
	DefaultLo   = 1.0
	DefaultHi   = 100.0
	DefaultSeed = 1
)

// Loop-count policy thresholds for Perf.
const (
	largeSize      = 2048 // at or above: one iteration
	smallSize      = 128  // at or below: many iterations
	largeLoopCount = 1
	smallLoopCount = 100
	baseLoopCount  = 10
)

// Config drives a Runner. Zero booleans disable the corresponding phase.
type Config struct {
	All       bool // demo + equality + perf
	TestEqual bool // cross-check against gonum
	PerfTest  bool // timed loop

	MSize int // rows of A (and of the product)
	NSize int // cols of A / rows of B

	// BlockSize is accepted for command-line compatibility only. Blocked
	// multiplication was measured slower than the (i,k,j) kernel and is not
	// implemented.
	BlockSize int

	Workers int     // MulParallel bound; 0 = GOMAXPROCS
	Seed    int64   // random operand seed
	Lo, Hi  float64 // random operand range [Lo, Hi)

	InputA     string // optional snapshot for A
	InputB     string // optional snapshot for B
	Output     string // optional snapshot path for A×B
	MetricsOut string // optional Prometheus textfile path
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MSize: DefaultSize,
		NSize: DefaultSize,
		Seed:  DefaultSeed,
		Lo:    DefaultLo,
		Hi:    DefaultHi,
	}
}

// Validate checks ranges. It returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.MSize <= 0:
		return fmt.Errorf("m_size %d must be > 0: %w", c.MSize, ErrInvalidConfig)
	case c.NSize <= 0:
		return fmt.Errorf("n_size %d must be > 0: %w", c.NSize, ErrInvalidConfig)
	case c.BlockSize < 0:
		return fmt.Errorf("block_size %d must be >= 0: %w", c.BlockSize, ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("workers %d must be >= 0: %w", c.Workers, ErrInvalidConfig)
	case !(c.Lo < c.Hi):
		return fmt.Errorf("range [%g, %g) is empty: %w", c.Lo, c.Hi, ErrInvalidConfig)
	}

	return nil
}

// LoopCount returns how many timed iterations Perf runs for an m-row product.
func LoopCount(m int) int {
	switch {
	case m >= largeSize:
		return largeLoopCount
	case m <= smallSize:
		return smallLoopCount
	default:
		return baseLoopCount
	}
}
