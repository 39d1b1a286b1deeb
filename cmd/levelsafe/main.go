// Command levelsafe counts the safe records in a levels file.
//
// It prints two lines to stdout: the number of records that are safe as-is,
// then the number that are safe with single-level dampening.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/levelsafe/config"
	"github.com/katalvlaran/levelsafe/deltas"
	"github.com/katalvlaran/levelsafe/reports"
	"github.com/katalvlaran/levelsafe/safety"
)

var (
	cfg config.Config

	// Logger; built from cfg unless already set.
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levelsafe [input-file]",
		Short: "Count safe records, with and without dampening",
		Long: `Reads one record of whitespace-separated integer levels per line.

A record is safe when every step between adjacent levels is 1 to 3 in size
and all steps go the same way. With dampening, a record also counts when
dropping any single level makes it safe.

Without an argument the file named by LEVELSAFE_INPUT is read.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runTally,
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if logger != nil {
		return nil
	}

	lvl, _ := cfg.Level()
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func runTally(cmd *cobra.Command, args []string) error {
	path := cfg.Input
	if len(args) == 1 {
		path = args[0]
	}

	recs, err := reports.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Info("input loaded", zap.String("path", path), zap.Int("records", len(recs)))

	rule := safety.DefaultRule()
	if logger.Core().Enabled(zap.DebugLevel) {
		for i, rec := range recs {
			logRecord(rule, i, rec)
		}
	}

	sum := rule.Tally(recs)
	logger.Info("tally complete",
		zap.Int("records", sum.Total),
		zap.Int("safe", sum.Safe),
		zap.Int("dampened", sum.Dampened))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, sum.Safe)
	fmt.Fprintln(out, sum.Dampened)

	return nil
}

// logRecord writes one debug line describing how rec was judged.
func logRecord(rule safety.Rule, i int, rec reports.Record) {
	v := rule.Explain(deltas.Seq(rec))
	removed, dampened := rule.DampeningIndex(rec)
	fields := []zap.Field{
		zap.Int("record", i+1),
		zap.Ints("levels", rec),
		zap.Bool("safe", v.Safe),
		zap.Bool("dampened", dampened),
	}
	if !v.Safe {
		fields = append(fields,
			zap.Stringer("reason", v.Reason),
			zap.Int("delta_index", v.Index),
			zap.Int("delta", v.Delta))
	}
	if removed >= 0 {
		fields = append(fields, zap.Int("removed", removed))
	}
	logger.Debug("record checked", fields...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
