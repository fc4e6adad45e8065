// SPDX-License-Identifier: MIT

// Command mmult compares the matrix package's dense product against gonum
// and times both.
//
// Usage:
//
//	mmult [-a] [-e] [-p] [-m rows] [-n cols] [-b block] [--workers N]
//	      [--input-a a.mmx] [--input-b b.mmx] [--output c.mmx]
//	      [--metrics-out mmult.prom] [--config mmult.yaml]
//
// Every flag may also be set through an MMULT_* environment variable
// (MMULT_M_SIZE, MMULT_INPUT_A, ...) or a YAML config file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/mmult/bench"
	"github.com/katalvlaran/mmult/config"
	"github.com/katalvlaran/mmult/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree on args and reports any error, including
// flag and argument errors raised before RunE, on errOut.
func execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(errOut, "mmult:", err)
	}

	return err
}

// newRootCmd builds the command tree writing results to out and
// diagnostics to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "mmult",
		Short:         "Dense matrix multiplication check and benchmark",
		Long:          "mmult multiplies A (m×n) by B (n×m), cross-checks the result against gonum and times gonum, serial and parallel products.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, out)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	fs := root.Flags()
	config.RegisterFlags(fs)
	fs.BoolP("usage", "u", false, "print usage and exit")
	fs.String("config", "", "YAML config file")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.Bool("log-dev", false, "human-readable development logging")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mmult v%s (%s)\n", version, commit)
		},
	})

	return root
}

func runRoot(cmd *cobra.Command, out io.Writer) error {
	fs := cmd.Flags()
	if usage, _ := fs.GetBool("usage"); usage {
		return cmd.Usage()
	}

	level, _ := fs.GetString("log-level")
	dev, _ := fs.GetBool("log-dev")
	log, err := logging.New(level, dev)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	configFile, _ := fs.GetString("config")
	cfg, err := config.Load(fs, configFile)
	if err != nil {
		return err
	}
	log.Debug("config resolved",
		zap.Int("m_size", cfg.MSize),
		zap.Int("n_size", cfg.NSize),
		zap.Int("workers", cfg.Workers),
		zap.Bool("all", cfg.All),
		zap.Bool("test_equal", cfg.TestEqual),
		zap.Bool("perf_test", cfg.PerfTest))

	if err := bench.NewRunner(cfg, log, out).Run(cmd.Context()); err != nil {
		log.Error("run failed", zap.Error(err))
		return err
	}

	return nil
}
