package figure

import (
	"image/color"
	"io"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	gplotter "gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/randytbushman/sorteval/src/plotter"
	"github.com/randytbushman/sorteval/src/style"
)

// WriteVector draws the figure with gonum/plot in one of svg, pdf, eps, jpg
// or tiff. Markers are drawn with their real glyphs here.
func (f *Figure) WriteVector(w io.Writer, format string) error {
	width, height := vg.Length(f.Width)*vg.Inch, vg.Length(f.Height)*vg.Inch
	var cw vg.CanvasWriterTo
	switch format {
	case "svg":
		cw = vgsvg.New(width, height)
	case "pdf":
		cw = vgpdf.New(width, height)
	case "eps":
		cw = vgeps.New(width, height)
	case "jpg", "jpeg":
		cw = vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(int(f.DPI)))}
	case "tif", "tiff":
		cw = vgimg.TiffCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(int(f.DPI)))}
	default:
		return errors.Errorf("unsupported vector format %q", format)
	}

	grid := make([][]*plot.Plot, f.Rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, f.Cols)
		for c := range grid[r] {
			p, err := gonumPlot(f.panels[r*f.Cols+c])
			if err != nil {
				return errors.Wrapf(err, "panel %d", r*f.Cols+c)
			}
			grid[r][c] = p
		}
	}
	dc := draw.New(cw)
	tiles := draw.Tiles{
		Rows: f.Rows, Cols: f.Cols,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c := range grid[r] {
			grid[r][c].Draw(canvases[r][c])
		}
	}
	if _, err := cw.WriteTo(w); err != nil {
		return errors.Wrapf(err, "write %s", format)
	}
	return nil
}

// gonumPlot translates one Axes into a gonum plot.
func gonumPlot(ax *plotter.Axes) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = ax.Title
	p.X.Label.Text = ax.XLabel
	p.Y.Label.Text = ax.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter

	traces := ax.Traces()
	xr, yr := panelRanges(ax, traces)
	p.X.Min, p.X.Max = xr.Min, xr.Max
	p.Y.Min, p.Y.Max = yr.Min, yr.Max
	p.Y.Tick.Marker = tickMarker{}
	p.X.Tick.Marker = tickMarker{}

	for _, t := range traces {
		if len(t.Points) == 0 {
			continue
		}
		xys := make(gplotter.XYs, len(t.Points))
		for i, pt := range t.Points {
			xys[i] = gplotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := gplotter.NewLine(xys)
		if err != nil {
			return nil, errors.Wrapf(err, "series %q", t.Name)
		}
		line.Color = t.Style.Color
		line.Width = vg.Points(t.Style.Width)
		for _, d := range t.Style.Dash {
			line.Dashes = append(line.Dashes, vg.Points(d*t.Style.Width))
		}
		thumbs := []plot.Thumbnailer{line}
		p.Add(line)

		if t.Style.Marker != style.MarkerNone {
			var marked gplotter.XYs
			for i, xy := range xys {
				if t.MarkerAt(i) {
					marked = append(marked, xy)
				}
			}
			sc, err := gplotter.NewScatter(marked)
			if err != nil {
				return nil, errors.Wrapf(err, "markers %q", t.Name)
			}
			sc.GlyphStyle = draw.GlyphStyle{
				Color:  t.Style.Color,
				Radius: vg.Points(plotter.MarkerSize / 2),
				Shape:  glyph(t.Style.Marker),
			}
			p.Add(sc)
			thumbs = append(thumbs, sc)
		}
		if ax.Legend {
			p.Legend.Add(t.Name, thumbs...)
		}
		if t.EndLabel {
			last := xys[len(xys)-1]
			lbl, err := gplotter.NewLabels(gplotter.XYLabels{XYs: gplotter.XYs{last}, Labels: []string{t.Name}})
			if err != nil {
				return nil, errors.Wrapf(err, "end label %q", t.Name)
			}
			for i := range lbl.TextStyle {
				lbl.TextStyle[i].Color = t.Style.Color
				lbl.TextStyle[i].YAlign = draw.YCenter
				lbl.TextStyle[i].Font.Size = vg.Points(plotter.EndLabelFontSize)
			}
			lbl.Offset = vg.Point{X: vg.Points(6)}
			p.Add(lbl)
		}
	}
	for _, ann := range ax.Annotations() {
		p.Add(annotationBox{Annotation: ann})
	}
	return p, nil
}

// panelRanges mirrors the raster backend: explicit limits, otherwise the data
// extent for x and [0, nice max] for y.
func panelRanges(ax *plotter.Axes, traces []plotter.Trace) (plotter.Limits, plotter.Limits) {
	xr := plotter.Limits{Min: math.Inf(1), Max: math.Inf(-1)}
	maxY := 0.0
	for _, t := range traces {
		for _, pt := range t.Points {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
				continue
			}
			xr.Min, xr.Max = math.Min(xr.Min, pt.X), math.Max(xr.Max, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if math.IsInf(xr.Min, 0) {
		xr = plotter.Limits{Min: 0, Max: 1}
	} else if xr.Max <= xr.Min {
		xr = plotter.Limits{Min: xr.Min - 0.5, Max: xr.Max + 0.5}
	}
	yr := plotter.Limits{Min: 0, Max: plotter.NiceCeil(maxY)}
	if ax.XLim != nil && ax.XLim.Max > ax.XLim.Min {
		xr = *ax.XLim
	}
	if ax.YLim != nil && ax.YLim.Max > ax.YLim.Min {
		yr = *ax.YLim
	}
	return xr, yr
}

func glyph(m style.Marker) draw.GlyphDrawer {
	switch m {
	case style.MarkerSquare:
		return draw.BoxGlyph{}
	case style.MarkerTriangle:
		return draw.TriangleGlyph{}
	case style.MarkerCross:
		return draw.CrossGlyph{}
	default:
		return draw.CircleGlyph{}
	}
}

// tickMarker places ticks with the same rule as the raster backend.
type tickMarker struct{}

func (tickMarker) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, v := range plotter.NiceTicks(min, max, 6) {
		ticks = append(ticks, plot.Tick{Value: v, Label: plotter.FormatTick(v)})
	}
	return ticks
}

// annotationBox draws an annotation in relative axes coordinates over a
// translucent white box.
type annotationBox struct {
	plotter.Annotation
}

var annotationFill = color.NRGBA{R: 255, G: 255, B: 255, A: 128}

func (a annotationBox) Plot(c draw.Canvas, _ *plot.Plot) {
	if a.Text == "" {
		return
	}
	sty := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(plotter.AnnotationFontSize)),
		XAlign:  draw.XRight,
		YAlign:  draw.YBottom,
		Handler: plot.DefaultTextHandler,
	}
	pad := vg.Points(plotter.AnnotationFontSize * 0.3)
	x := c.Min.X + vg.Length(a.X)*(c.Max.X-c.Min.X)
	y := c.Min.Y + vg.Length(a.Y)*(c.Max.Y-c.Min.Y)
	tw, th := sty.Width(a.Text), sty.Height(a.Text)
	c.FillPolygon(annotationFill, []vg.Point{
		{X: x - tw - 2*pad, Y: y},
		{X: x, Y: y},
		{X: x, Y: y + th + 2*pad},
		{X: x - tw - 2*pad, Y: y + th + 2*pad},
	})
	c.FillText(sty, vg.Point{X: x - pad, Y: y + pad}, a.Text)
}
