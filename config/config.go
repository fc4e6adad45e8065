// SPDX-License-Identifier: MIT

// Package config resolves a bench.Config from command-line flags, MMULT_*
// environment variables, an optional YAML file and the built-in defaults,
// in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mmult/bench"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MMULT_M_SIZE.
const EnvPrefix = "MMULT"

// Flag and key names. Keys are shared by flags, env and the config file.
const (
	KeyAll        = "all"
	KeyTestEqual  = "test_equal"
	KeyPerfTest   = "perf_test"
	KeyMSize      = "m_size"
	KeyNSize      = "n_size"
	KeyBlockSize  = "block_size"
	KeyWorkers    = "workers"
	KeySeed       = "seed"
	KeyLo         = "lo"
	KeyHi         = "hi"
	KeyInputA     = "input-a"
	KeyInputB     = "input-b"
	KeyOutput     = "output"
	KeyMetricsOut = "metrics-out"
)

// ErrConfigFile indicates the named config file could not be read or parsed.
var ErrConfigFile = errors.New("config: cannot read config file")

// RegisterFlags declares every bench flag on fs with its default and, for
// the historical getopt flags, its single-letter shorthand.
func RegisterFlags(fs *pflag.FlagSet) {
	d := bench.DefaultConfig()

	fs.BoolP(KeyAll, "a", false, "run demo, equality check and perf test")
	fs.BoolP(KeyTestEqual, "e", false, "cross-check the product against gonum")
	fs.BoolP(KeyPerfTest, "p", false, "time gonum, serial and parallel products")
	fs.IntP(KeyMSize, "m", d.MSize, "rows of A")
	fs.IntP(KeyNSize, "n", d.NSize, "columns of A")
	fs.IntP(KeyBlockSize, "b", d.BlockSize, "accepted for compatibility; ignored")
	fs.Int(KeyWorkers, d.Workers, "parallel workers (0 = GOMAXPROCS)")
	fs.Int64(KeySeed, d.Seed, "random operand seed")
	fs.Float64(KeyLo, d.Lo, "random operand lower bound (inclusive)")
	fs.Float64(KeyHi, d.Hi, "random operand upper bound (exclusive)")
	fs.String(KeyInputA, "", "load A from this snapshot")
	fs.String(KeyInputB, "", "load B from this snapshot")
	fs.String(KeyOutput, "", "save A×B to this snapshot")
	fs.String(KeyMetricsOut, "", "write Prometheus metrics to this textfile")
}

// Load resolves the configuration. fs must have been populated by
// RegisterFlags and parsed; configFile may be empty. The result is validated
// and any range error wraps bench.ErrInvalidConfig.
func Load(fs *pflag.FlagSet, configFile string) (bench.Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return bench.Config{}, fmt.Errorf("%w %q: %v", ErrConfigFile, configFile, err)
		}
	}
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return bench.Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	cfg := bench.Config{
		All:        v.GetBool(KeyAll),
		TestEqual:  v.GetBool(KeyTestEqual),
		PerfTest:   v.GetBool(KeyPerfTest),
		MSize:      v.GetInt(KeyMSize),
		NSize:      v.GetInt(KeyNSize),
		BlockSize:  v.GetInt(KeyBlockSize),
		Workers:    v.GetInt(KeyWorkers),
		Seed:       v.GetInt64(KeySeed),
		Lo:         v.GetFloat64(KeyLo),
		Hi:         v.GetFloat64(KeyHi),
		InputA:     v.GetString(KeyInputA),
		InputB:     v.GetString(KeyInputB),
		Output:     v.GetString(KeyOutput),
		MetricsOut: v.GetString(KeyMetricsOut),
	}
	if err := cfg.Validate(); err != nil {
		return bench.Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// setDefaults mirrors bench.DefaultConfig so env and file values resolve
// even when no flag set is bound.
func setDefaults(v *viper.Viper) {
	d := bench.DefaultConfig()
	v.SetDefault(KeyAll, d.All)
	v.SetDefault(KeyTestEqual, d.TestEqual)
	v.SetDefault(KeyPerfTest, d.PerfTest)
	v.SetDefault(KeyMSize, d.MSize)
	v.SetDefault(KeyNSize, d.NSize)
	v.SetDefault(KeyBlockSize, d.BlockSize)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyLo, d.Lo)
	v.SetDefault(KeyHi, d.Hi)
	v.SetDefault(KeyInputA, d.InputA)
	v.SetDefault(KeyInputB, d.InputB)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyMetricsOut, d.MetricsOut)
}
