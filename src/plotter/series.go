package plotter

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/randytbushman/sorteval/src/dataset"
	"github.com/randytbushman/sorteval/src/style"
)

// MicrosPerMilli converts the microsecond timings in the tables to the
// milliseconds shown on the y axis.
const MicrosPerMilli = 1000.0

// ErrInvalidScale is returned for a zero (or NaN) x scale.
var ErrInvalidScale = errors.New("x scale must be nonzero")

// Request selects what PlotSeries draws.
type Request struct {
	// XColumn names the independent variable.
	XColumn string
	// Include lists the y columns in drawing order. nil means every column
	// except XColumn, in table order.
	Include []string
	// Exclude removes columns from the selection.
	Exclude []string
	// XScale divides every x value; it must be nonzero.
	XScale float64
	// EndLabels labels each series at its last point. Options.EndLabels has
	// the same effect.
	EndLabels bool
}

// Columns resolves the y columns the request selects from ds, without
// checking that they exist.
func (req Request) Columns(ds *dataset.Dataset) []string {
	var cols []string
	if req.Include == nil {
		cols = ds.Others(append([]string{req.XColumn}, req.Exclude...)...)
	} else {
		for _, c := range req.Include {
			if !contains(req.Exclude, c) {
				cols = append(cols, c)
			}
		}
	}
	return cols
}

// PlotSeries draws the selected columns of ds onto ax and returns the largest
// converted y value drawn. The result is never below 0: it is 0 when nothing is
// drawn or every value is negative. Each y value is divided by
// MicrosPerMilli and each x value by req.XScale. Styles come from sheet, with
// opts applied; a nil sheet means the built-in sheet for opts.ColorMode.
//
// Every column and style is resolved before anything is drawn, so a failed
// call leaves ax untouched.
func PlotSeries(ax *Axes, ds *dataset.Dataset, req Request, sheet *style.Sheet, opts style.Options) (float64, error) {
	if req.XScale == 0 || math.IsNaN(req.XScale) {
		return 0, ErrInvalidScale
	}
	if sheet == nil {
		sheet = style.SheetFor(opts.ColorMode)
	}
	xs, err := ds.Column(req.XColumn)
	if err != nil {
		return 0, errors.Wrap(err, "x column")
	}
	cols := req.Columns(ds)
	pending := make([]Trace, 0, len(cols))
	for _, name := range cols {
		raw, err := ds.Column(name)
		if err != nil {
			return 0, errors.Wrap(err, "y column")
		}
		st, err := sheet.Lookup(name)
		if err != nil {
			return 0, err
		}
		pts := make([]Point, len(raw))
		for i, v := range raw {
			pts[i] = Point{X: xs[i] / req.XScale, Y: v / MicrosPerMilli}
		}
		pending = append(pending, Trace{
			Name:         name,
			Points:       pts,
			Style:        opts.Apply(name, st),
			MarkerStride: opts.Stride(),
			EndLabel:     req.EndLabels || opts.EndLabels,
		})
	}

	maxY := 0.0
	for _, t := range pending {
		ys := make([]float64, 0, len(t.Points))
		for _, p := range t.Points {
			if !math.IsNaN(p.Y) {
				ys = append(ys, p.Y)
			}
		}
		if len(ys) > 0 {
			maxY = math.Max(maxY, floats.Max(ys))
		}
	}
	ax.traces = append(ax.traces, pending...)
	return maxY, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
