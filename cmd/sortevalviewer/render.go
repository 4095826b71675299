package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/randytbushman/sorteval/cmd/sortevalviewer/uihelpers"
	"github.com/randytbushman/sorteval/src/applog"
	"github.com/randytbushman/sorteval/src/figure"
	"github.com/randytbushman/sorteval/src/plotter"
	"github.com/randytbushman/sorteval/src/style"
)

// exportWidthOverride fixes the chart width when no window exists (tests and
// -export-dir). Zero uses the default.
var exportWidthOverride int

var viewerLog = applog.New("viewer")

// screenDPI keeps on-screen fonts at their nominal point size.
const screenDPI = 96

// chartSize computes a chart size based on the current window width.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		if exportWidthOverride > 0 {
			return uihelpers.ComputeChartDimensions(exportWidthOverride)
		}
		return uihelpers.ComputeChartDimensions(1000)
	}
	sz := state.window.Canvas().Size()
	// Leave room for the side panel.
	return uihelpers.ComputeChartDimensions(int(sz.Width*0.7) - 12)
}

// visibleSeries lists the y columns not toggled off, in table order. The
// result is never nil: nil would select every column.
func visibleSeries(state *uiState) []string {
	out := []string{}
	if state.data == nil {
		return out
	}
	for _, c := range state.data.Others(state.xColumn) {
		if !state.hidden[c] {
			out = append(out, c)
		}
	}
	return out
}

func renderOptions(state *uiState) style.Options {
	opts := style.DefaultOptions()
	var marked []string
	for name, on := range state.markers {
		if on {
			marked = append(marked, name)
		}
	}
	opts = opts.WithMarkers(marked...)
	opts.EndLabels = state.endLabels
	if state.monochrome {
		opts.ColorMode = style.Monochrome
	}
	return opts
}

// renderChart draws the loaded table with the current toggles.
func renderChart(state *uiState) image.Image {
	if state == nil || state.data == nil {
		w, h := chartSize(state)
		return drawHint(blank(w, h), "Open a results table (File > Open)")
	}
	w, h := chartSize(state)
	series := visibleSeries(state)
	ax := plotter.NewAxes(state.title)
	ax.XLabel = fmt.Sprintf("%s (÷%g)", state.xColumn, state.xScale)
	ax.YLabel = "Milliseconds"
	ax.Legend = !state.endLabels
	ymax, err := plotter.PlotSeries(ax, state.data, plotter.Request{
		XColumn: state.xColumn,
		Include: series,
		XScale:  state.xScale,
	}, nil, renderOptions(state))
	if err != nil {
		viewerLog.Warnf("plot %s: %v", state.filePath, err)
		return drawHint(blank(w, h), err.Error())
	}
	state.lastMax = ymax
	top := ymax * figure.DefaultYMargin
	if top <= 0 {
		top = 1
	}
	ax.SetYLim(0, top)
	if strings.TrimSpace(state.annotation) != "" {
		plotter.Annotate(ax, state.annotation)
	}
	img, err := ax.RenderImage(w, h, screenDPI)
	if err != nil {
		viewerLog.Warnf("render: %v", err)
		return drawHint(blank(w, h), err.Error())
	}
	if state.showHints {
		img = drawHint(img, fmt.Sprintf("%d of %d series, max %.2f ms, %d rows", len(series), len(state.data.Columns())-1, ymax, state.data.Len()))
	}
	return img
}

// drawHint overlays a single line of text in the bottom-left corner.
func drawHint(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

// blank is the placeholder shown before a table is loaded.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 245, G: 245, B: 245, A: 255}), image.Point{}, draw.Src)
	return img
}
