// Command sorteval benchmarks the sorting algorithms and renders the timing
// tables as figures.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/randytbushman/sorteval/src/applog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "sorteval",
		Short:         "Benchmark sorting algorithms and plot their runtimes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !applog.SetLogLevel(logLevel) {
				return errors.Errorf("unknown log level %q (debug, info, warn, error)", logLevel)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.AddCommand(
		newBenchCmd(),
		newFigureCmd(),
		newPlotCmd(),
		newInspectCmd(),
		newPresetsCmd(),
	)
	return root
}
