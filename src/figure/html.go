package figure

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/randytbushman/sorteval/src/plotter"
	"github.com/randytbushman/sorteval/src/style"
)

// echarts line types for the built-in dash patterns.
func lineType(s style.Style) string {
	switch {
	case s.Solid():
		return "solid"
	case len(s.Dash) == 2 && s.Dash[0] == s.Dash[1]:
		return "dotted"
	default:
		return "dashed"
	}
}

// WriteHTML writes an interactive page with one line chart per panel.
func (f *Figure) WriteHTML(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "sorteval"
	cw, ch := f.PixelSize()
	// Panels shown at screen resolution, not print dpi.
	pw := int(float64(cw) / f.DPI * 96 / float64(f.Cols))
	ph := int(float64(ch) / f.DPI * 96 / float64(f.Rows))
	for i, ax := range f.panels {
		page.AddCharts(echartsLine(ax, i, pw, ph))
	}
	return errors.Wrap(page.Render(w), "render html")
}

func echartsLine(ax *plotter.Axes, i, width, height int) *charts.Line {
	traces := ax.Traces()
	xr, yr := panelRanges(ax, traces)
	subtitle := ""
	for _, a := range ax.Annotations() {
		if subtitle != "" {
			subtitle += "\n"
		}
		subtitle += a.Text
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: fmt.Sprintf("panel%d", i),
			Width:   fmt.Sprintf("%dpx", width),
			Height:  fmt.Sprintf("%dpx", height),
		}),
		charts.WithTitleOpts(opts.Title{Title: ax.Title, Subtitle: subtitle}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(ax.Legend), Left: "left", Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: ax.XLabel, Min: xr.Min, Max: xr.Max}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: ax.YLabel, Min: yr.Min, Max: yr.Max}),
	)
	for _, t := range traces {
		data := make([]opts.LineData, len(t.Points))
		for j, p := range t.Points {
			d := opts.LineData{Value: []interface{}{p.X, p.Y}, Symbol: "none"}
			if t.MarkerAt(j) {
				d.Symbol = echartsSymbol(t.Style.Marker)
				d.SymbolSize = int(plotter.MarkerSize)
			}
			data[j] = d
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineStyleOpts(opts.LineStyle{
				Color: style.Hex(t.Style.Color),
				Width: float32(t.Style.Width),
				Type:  lineType(t.Style),
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: style.Hex(t.Style.Color)}),
		}
		if mark, ok := endLabelMark(t); ok {
			seriesOpts = append(seriesOpts, charts.WithMarkPointNameCoordItemOpts(mark))
		}
		line.AddSeries(t.Name, data, seriesOpts...)
	}
	return line
}

// endLabelMark places the series name right of the last point.
func endLabelMark(t plotter.Trace) (opts.MarkPointNameCoordItem, bool) {
	if !t.EndLabel || len(t.Points) == 0 {
		return opts.MarkPointNameCoordItem{}, false
	}
	last := t.Points[len(t.Points)-1]
	return opts.MarkPointNameCoordItem{
		Name:       t.Name,
		Coordinate: []interface{}{last.X, last.Y},
		Symbol:     "none",
		Label: &opts.Label{
			Show:      opts.Bool(true),
			Position:  "right",
			Formatter: "{b}",
			Color:     style.Hex(t.Style.Color),
		},
	}, true
}

func echartsSymbol(m style.Marker) string {
	switch m {
	case style.MarkerSquare:
		return "rect"
	case style.MarkerTriangle:
		return "triangle"
	case style.MarkerCross:
		return "pin"
	default:
		return "circle"
	}
}
