package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/randytbushman/sorteval/src/dataset"
)

func newInspectCmd() *cobra.Command {
	var sheet string
	cmd := &cobra.Command{
		Use:   "inspect <table>",
		Short: "Summarize the columns of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.LoadWithOptions(args[0], dataset.LoadOptions{Sheet: sheet})
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), ds)
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet for XLSX tables")
	return cmd
}

func writeSummary(w io.Writer, ds *dataset.Dataset) error {
	fmt.Fprintf(w, "%s: %d rows, %d columns\n", ds.Source(), ds.Len(), len(ds.Columns()))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tmin\tmean\tmax")
	for _, name := range ds.Columns() {
		col, err := ds.Column(name)
		if err != nil {
			return err
		}
		if len(col) == 0 {
			fmt.Fprintf(tw, "%s\t-\t-\t-\n", name)
			continue
		}
		fmt.Fprintf(tw, "%s\t%g\t%.1f\t%g\n", name, floats.Min(col), stat.Mean(col, nil), floats.Max(col))
	}
	return tw.Flush()
}
