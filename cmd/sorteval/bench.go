package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randytbushman/sorteval/src/bench"
)

func newBenchCmd() *cobra.Command {
	cfg := bench.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm and write one CSV per value range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exps, err := bench.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			for _, e := range exps {
				fmt.Fprintln(cmd.OutOrStdout(), e.Path)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&cfg.Trials, "trials", "t", cfg.Trials, "Sorting trials per array length")
	f.IntVarP(&cfg.StartLength, "start", "s", cfg.StartLength, "Smallest array length")
	f.IntVarP(&cfg.EndLength, "end", "e", cfg.EndLength, "Largest array length")
	f.IntVarP(&cfg.Increment, "increment", "i", cfg.Increment, "Length step between rows")
	f.Int64VarP(&cfg.MinValue, "min", "m", cfg.MinValue, "Smallest array value")
	f.Int64SliceVarP(&cfg.MaxValues, "max", "M", cfg.MaxValues, "Largest array values, one experiment each")
	f.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Experiments run concurrently")
	f.StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "Directory for result tables")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Shuffle seed")
	f.StringSliceVar(&cfg.Algorithms, "algorithms", nil, "Algorithms to time (default all)")
	f.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Check every sorted array")
	f.Int64Var(&cfg.MaxCountingRange, "max-counting-range", cfg.MaxCountingRange, "Skip algorithms whose count table would exceed this")
	f.DurationVar(&cfg.ProgressInterval, "progress-interval", cfg.ProgressInterval, "Interval for progress logging (0 disables)")
	f.StringVar(&cfg.XLSXPath, "xlsx", "", "Also write all tables to this workbook")
	return cmd
}
