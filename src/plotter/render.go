package plotter

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/randytbushman/sorteval/src/style"
)

// Font sizes, in points.
const (
	TitleFontSize      = 12.0
	LabelFontSize      = 10.0
	AnnotationFontSize = 12.0
	LegendFontSize     = 10.0
	EndLabelFontSize   = 8.0
	// MarkerSize is the marker diameter.
	MarkerSize = 8.0
)

// pointsToPixels converts a length in points to pixels at dpi.
func pointsToPixels(pt, dpi float64) float64 { return pt * dpi / 72 }

// Chart builds the go-chart description of the axes at a pixel size and dpi.
func (a *Axes) Chart(width, height int, dpi float64) chart.Chart {
	if dpi <= 0 {
		dpi = chart.DefaultDPI
	}
	px := func(pt float64) float64 { return pointsToPixels(pt, dpi) }
	pad := func(pt float64) int { return int(math.Round(px(pt))) }

	xr, yr := a.ranges()
	series := make([]chart.Series, 0, len(a.traces)*2+1)
	for _, t := range a.traces {
		series = append(series, traceSeries(t, px))
	}
	if len(a.traces) == 0 {
		// go-chart needs one visible series; draw an invisible one to keep
		// the frame.
		series = append(series, chart.ContinuousSeries{
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent},
			XValues: []float64{xr.Min, xr.Max},
			YValues: []float64{yr.Min, yr.Min},
		})
	}
	for _, t := range a.traces {
		if lbl, ok := endLabelSeries(t, px); ok {
			series = append(series, lbl)
		}
	}

	ch := chart.Chart{
		Title:      a.Title,
		TitleStyle: chart.Style{FontSize: TitleFontSize},
		Width:      width,
		Height:     height,
		DPI:        dpi,
		Background: chart.Style{Padding: chart.Box{Top: pad(10), Left: pad(6), Right: pad(10), Bottom: pad(6)}},
		XAxis: chart.XAxis{
			Name:      a.XLabel,
			NameStyle: chart.Style{FontSize: LabelFontSize},
			Style:     chart.Style{FontSize: LabelFontSize * 0.9},
			Range:     &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
			Ticks:     chartTicks(xr, 6),
		},
		YAxis: chart.YAxis{
			Name:      a.YLabel,
			NameStyle: chart.Style{FontSize: LabelFontSize},
			Style:     chart.Style{FontSize: LabelFontSize * 0.9},
			Range:     &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
			Ticks:     chartTicks(yr, 6),
		},
		Series: series,
	}
	if a.Legend && len(a.traces) > 0 {
		ch.Elements = append(ch.Elements, chart.Legend(&ch, chart.Style{FontSize: LegendFontSize}))
	}
	for _, ann := range a.annotations {
		ch.Elements = append(ch.Elements, annotationElement(ann, px))
	}
	return ch
}

// Render writes the axes as a PNG image.
func (a *Axes) Render(w io.Writer, width, height int, dpi float64) error {
	ch := a.Chart(width, height, dpi)
	if err := ch.Render(chart.PNG, w); err != nil {
		return errors.Wrapf(err, "render %q", a.Title)
	}
	return nil
}

// RenderImage renders the axes and decodes the result.
func (a *Axes) RenderImage(width, height int, dpi float64) (image.Image, error) {
	var buf bytes.Buffer
	if err := a.Render(&buf, width, height, dpi); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "decode rendered chart")
	}
	return img, nil
}

// ranges picks the axis intervals: explicit limits win; otherwise x spans the
// data and y runs from 0 to a rounded data maximum.
func (a *Axes) ranges() (Limits, Limits) {
	minX, maxX, _, maxY, ok := a.dataBounds()
	xr := Limits{Min: 0, Max: 1}
	yr := Limits{Min: 0, Max: 1}
	if ok {
		xr = Limits{Min: minX, Max: maxX}
		if xr.Max <= xr.Min {
			xr = Limits{Min: xr.Min - 0.5, Max: xr.Max + 0.5}
		}
		yr = Limits{Min: 0, Max: NiceCeil(maxY)}
	}
	if a.XLim != nil && a.XLim.Max > a.XLim.Min {
		xr = *a.XLim
	}
	if a.YLim != nil && a.YLim.Max > a.YLim.Min {
		yr = *a.YLim
	}
	return xr, yr
}

func chartTicks(l Limits, n int) []chart.Tick {
	vals := NiceTicks(l.Min, l.Max, n)
	ticks := make([]chart.Tick, 0, len(vals))
	for _, v := range vals {
		ticks = append(ticks, chart.Tick{Value: v, Label: FormatTick(v)})
	}
	return ticks
}

func traceSeries(t Trace, px func(float64) float64) chart.ContinuousSeries {
	xs := make([]float64, len(t.Points))
	ys := make([]float64, len(t.Points))
	for i, p := range t.Points {
		xs[i], ys[i] = p.X, p.Y
	}
	st := chart.Style{
		StrokeColor: t.Style.Color,
		StrokeWidth: px(t.Style.Width),
	}
	if !t.Style.Solid() {
		dash := make([]float64, len(t.Style.Dash))
		// Dash lengths scale with the line width, as in matplotlib.
		for i, d := range t.Style.Dash {
			dash[i] = px(d * t.Style.Width)
		}
		st.StrokeDashArray = dash
	}
	if t.Style.Marker != style.MarkerNone {
		// go-chart only draws round dots; other symbols degrade to circles
		// in raster output.
		radius := px(MarkerSize) / 2
		color := t.Style.Color
		st.DotColor = color
		st.DotWidth = radius
		st.DotWidthProvider = func(_, _ chart.Range, index int, _, _ float64) float64 {
			if t.MarkerAt(index) {
				return radius
			}
			return 0
		}
		st.DotColorProvider = func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
			if t.MarkerAt(index) {
				return color
			}
			return drawing.ColorTransparent
		}
	}
	if len(xs) == 1 {
		// A lone point still needs two x values.
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}
	return chart.ContinuousSeries{Name: t.Name, Style: st, XValues: xs, YValues: ys}
}

// endLabelSeries boxes the series name just right of its last point.
func endLabelSeries(t Trace, px func(float64) float64) (chart.AnnotationSeries, bool) {
	if !t.EndLabel || len(t.Points) == 0 {
		return chart.AnnotationSeries{}, false
	}
	last := t.Points[len(t.Points)-1]
	return chart.AnnotationSeries{
		Style: chart.Style{
			FillColor:   drawing.ColorWhite,
			StrokeColor: t.Style.Color,
			StrokeWidth: px(0.8),
			FontColor:   t.Style.Color,
			FontSize:    EndLabelFontSize,
		},
		Annotations: []chart.Value2{{XValue: last.X, YValue: last.Y, Label: t.Name}},
	}, true
}

var annotationFill = drawing.Color{R: 255, G: 255, B: 255, A: 128}

// annotationElement draws ann inside the plot box: a rounded translucent box
// whose bottom-right corner sits at the relative position, with the text in it.
func annotationElement(ann Annotation, px func(float64) float64) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if ann.Text == "" {
			return
		}
		r.SetFont(defaults.GetFont())
		r.SetFontSize(AnnotationFontSize)
		r.SetFontColor(drawing.ColorBlack)
		tb := r.MeasureText(ann.Text)

		pad := int(math.Max(2, math.Round(px(AnnotationFontSize*0.1))))
		right := cb.Left + int(math.Round(ann.X*float64(cb.Width())))
		bottom := cb.Bottom - int(math.Round(ann.Y*float64(cb.Height())))
		left := right - tb.Width() - 2*pad
		top := bottom - tb.Height() - 2*pad

		r.SetFillColor(annotationFill)
		r.SetStrokeColor(drawing.ColorTransparent)
		r.SetStrokeWidth(0)
		roundedRect(r, left, top, right, bottom, pad)
		r.Fill()

		r.SetFont(defaults.GetFont())
		r.SetFontSize(AnnotationFontSize)
		r.SetFontColor(drawing.ColorBlack)
		r.Text(ann.Text, left+pad, bottom-pad)
	}
}

func roundedRect(r chart.Renderer, left, top, right, bottom, radius int) {
	if half := (bottom - top) / 2; radius > half {
		radius = half
	}
	rad := float64(radius)
	r.MoveTo(left+radius, top)
	r.LineTo(right-radius, top)
	r.ArcTo(right-radius, top+radius, rad, rad, -math.Pi/2, math.Pi/2)
	r.LineTo(right, bottom-radius)
	r.ArcTo(right-radius, bottom-radius, rad, rad, 0, math.Pi/2)
	r.LineTo(left+radius, bottom)
	r.ArcTo(left+radius, bottom-radius, rad, rad, math.Pi/2, math.Pi/2)
	r.LineTo(left, top+radius)
	r.ArcTo(left+radius, top+radius, rad, rad, math.Pi, math.Pi/2)
	r.Close()
}
