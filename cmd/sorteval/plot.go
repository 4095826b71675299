package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/randytbushman/sorteval/src/config"
	"github.com/randytbushman/sorteval/src/dataset"
	"github.com/randytbushman/sorteval/src/figure"
	"github.com/randytbushman/sorteval/src/plotter"
	"github.com/randytbushman/sorteval/src/style"
)

type plotOptions struct {
	output     string
	xColumn    string
	xScale     float64
	columns    []string
	exclude    []string
	mono       bool
	markers    []string
	endLabels  bool
	stride     int
	title      string
	annotation string
	width      float64
	height     float64
	dpi        float64
	sheet      string
}

func newPlotCmd() *cobra.Command {
	o := plotOptions{}
	cmd := &cobra.Command{
		Use:   "plot <table>",
		Short: "Plot one table (CSV, TSV, XLSX or Go benchmark output) as a single chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runPlot(args[0], o)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "Output file (default: table name with .png)")
	f.StringVar(&o.xColumn, "x", config.DefaultXColumn, "Independent column")
	f.Float64Var(&o.xScale, "x-scale", config.DefaultXScale, "Divide x values by this")
	f.StringSliceVar(&o.columns, "columns", nil, "Columns to draw, in order (default all)")
	f.StringSliceVar(&o.exclude, "exclude", nil, "Columns to leave out")
	f.BoolVar(&o.mono, "mono", false, "Draw every series in black")
	f.StringSliceVar(&o.markers, "markers", nil, "Series that get circle markers")
	f.BoolVar(&o.endLabels, "end-labels", false, "Name each series at its last point")
	f.IntVar(&o.stride, "marker-stride", style.DefaultMarkerStride, "Points between markers")
	f.StringVar(&o.title, "title", "", "Chart title")
	f.StringVar(&o.annotation, "annotate", "", "Text for the bottom-right corner")
	f.Float64Var(&o.width, "width", config.DefaultWidth, "Width in inches")
	f.Float64Var(&o.height, "height", config.DefaultHeight, "Height in inches")
	f.Float64Var(&o.dpi, "dpi", 150, "Resolution")
	f.StringVar(&o.sheet, "sheet", "", "Worksheet for XLSX tables")
	return cmd
}

func runPlot(path string, o plotOptions) (string, error) {
	ds, err := dataset.LoadWithOptions(path, dataset.LoadOptions{Sheet: o.sheet})
	if err != nil {
		return "", err
	}
	fig, err := figure.New(1, 1, o.width, o.height, o.dpi)
	if err != nil {
		return "", err
	}
	opts := style.DefaultOptions().WithMarkers(o.markers...)
	opts.EndLabels = o.endLabels
	opts.MarkerStride = o.stride
	if o.mono {
		opts.ColorMode = style.Monochrome
	}
	ax := fig.Panel(0)
	ax.Title = o.title
	ax.XLabel = config.DefaultXLabel
	ax.YLabel = config.DefaultYLabel
	ax.Legend = !o.endLabels
	var include []string
	if len(o.columns) > 0 {
		include = o.columns
	}
	ymax, err := plotter.PlotSeries(ax, ds, plotter.Request{
		XColumn: o.xColumn,
		Include: include,
		Exclude: o.exclude,
		XScale:  o.xScale,
	}, nil, opts)
	if err != nil {
		return "", err
	}
	if o.annotation != "" {
		plotter.Annotate(ax, o.annotation)
	}
	fig.ShareY(ymax, figure.DefaultYMargin)

	out := o.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	if err := fig.Save(out); err != nil {
		return "", errors.Wrapf(err, "save %s", out)
	}
	return out, nil
}
