package plotter

import (
	"errors"
	"math"
	"testing"

	"github.com/randytbushman/sorteval/src/dataset"
	"github.com/randytbushman/sorteval/src/style"
)

func mustDataset(t *testing.T, names []string, cols ...[]float64) *dataset.Dataset {
	t.Helper()
	d, err := dataset.New(names, cols)
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	return d
}

func exampleTable(t *testing.T) *dataset.Dataset {
	return mustDataset(t, []string{"Length", "QR Sort", "Radix Sort"},
		[]float64{1000, 2000},
		[]float64{5000, 9000},
		[]float64{3000, 7000},
	)
}

func TestPlotSeriesExample(t *testing.T) {
	ax := NewAxes("A")
	max, err := PlotSeries(ax, exampleTable(t), Request{XColumn: "Length", XScale: 1000}, nil, style.DefaultOptions())
	if err != nil {
		t.Fatalf("PlotSeries: %v", err)
	}
	if max != 9 {
		t.Fatalf("max = %v, want 9", max)
	}
	traces := ax.Traces()
	if len(traces) != 2 {
		t.Fatalf("got %d traces, want 2", len(traces))
	}
	want := map[string][]Point{
		"QR Sort":    {{1, 5}, {2, 9}},
		"Radix Sort": {{1, 3}, {2, 7}},
	}
	for _, tr := range traces {
		pts := want[tr.Name]
		if len(tr.Points) != len(pts) {
			t.Fatalf("%s: %d points", tr.Name, len(tr.Points))
		}
		for i, p := range pts {
			if tr.Points[i] != p {
				t.Fatalf("%s point %d = %v, want %v", tr.Name, i, tr.Points[i], p)
			}
		}
	}
	if traces[0].Name != "QR Sort" || traces[0].Style.Color != style.ColorC0 || !traces[0].Style.Solid() {
		t.Fatalf("QR Sort style wrong: %+v", traces[0].Style)
	}
	if traces[1].Style.Color != style.ColorC1 || traces[1].Style.Solid() {
		t.Fatalf("Radix Sort style wrong: %+v", traces[1].Style)
	}
}

func TestPlotSeriesMaxIsCombinable(t *testing.T) {
	ds := exampleTable(t)
	opts := style.DefaultOptions()
	req := func(col string) Request {
		return Request{XColumn: "Length", Include: []string{col}, XScale: 1000}
	}
	a, err := PlotSeries(NewAxes(""), ds, req("QR Sort"), nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := PlotSeries(NewAxes(""), ds, req("Radix Sort"), nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	both, err := PlotSeries(NewAxes(""), ds, Request{XColumn: "Length", XScale: 1000}, nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	if math.Max(a, b) != both {
		t.Fatalf("max(%v, %v) != %v", a, b, both)
	}
}

func TestPlotSeriesScaling(t *testing.T) {
	ds := mustDataset(t, []string{"Length", "Merge Sort"}, []float64{10000, 20000}, []float64{1500, 250})
	ax := NewAxes("")
	if _, err := PlotSeries(ax, ds, Request{XColumn: "Length", XScale: 10000}, nil, style.DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	pts := ax.Traces()[0].Points
	if pts[0] != (Point{1, 1.5}) || pts[1] != (Point{2, 0.25}) {
		t.Fatalf("points = %v", pts)
	}
}

func TestPlotSeriesNoColumns(t *testing.T) {
	ds := exampleTable(t)
	ax := NewAxes("")
	max, err := PlotSeries(ax, ds, Request{XColumn: "Length", Exclude: []string{"QR Sort", "Radix Sort"}, XScale: 1000}, nil, style.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if max != 0 || !ax.Empty() {
		t.Fatalf("max=%v empty=%v", max, ax.Empty())
	}
}

func TestPlotSeriesMissingColumnNoSideEffects(t *testing.T) {
	ds := exampleTable(t)
	ax := NewAxes("")
	_, err := PlotSeries(ax, ds, Request{XColumn: "Length", Include: []string{"QR Sort", "Bogo Sort"}, XScale: 1000}, nil, style.DefaultOptions())
	if !errors.Is(err, dataset.ErrColumnNotFound) {
		t.Fatalf("err = %v, want ErrColumnNotFound", err)
	}
	if !ax.Empty() {
		t.Fatalf("axes modified after failure: %d traces", len(ax.Traces()))
	}
	if _, err := PlotSeries(ax, ds, Request{XColumn: "Size", XScale: 1000}, nil, style.DefaultOptions()); !errors.Is(err, dataset.ErrColumnNotFound) {
		t.Fatalf("missing x column: %v", err)
	}
}

func TestPlotSeriesZeroScale(t *testing.T) {
	if _, err := PlotSeries(NewAxes(""), exampleTable(t), Request{XColumn: "Length"}, nil, style.DefaultOptions()); !errors.Is(err, ErrInvalidScale) {
		t.Fatalf("err = %v", err)
	}
}

func TestPlotSeriesStrictSheet(t *testing.T) {
	sheet := style.NewSheet(map[string]style.Style{"QR Sort": style.Neutral()}, nil)
	ax := NewAxes("")
	_, err := PlotSeries(ax, exampleTable(t), Request{XColumn: "Length", XScale: 1000}, sheet, style.DefaultOptions())
	if !errors.Is(err, style.ErrNoStyle) {
		t.Fatalf("err = %v, want ErrNoStyle", err)
	}
	if !ax.Empty() {
		t.Fatal("axes modified after failure")
	}
}

func TestPlotSeriesUnmappedGetsNeutral(t *testing.T) {
	ds := mustDataset(t, []string{"Length", "Heap Sort"}, []float64{1}, []float64{1})
	ax := NewAxes("")
	if _, err := PlotSeries(ax, ds, Request{XColumn: "Length", XScale: 1}, nil, style.DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if s := ax.Traces()[0].Style; s.Color != style.ColorNeutral || !s.Solid() {
		t.Fatalf("style = %+v", s)
	}
}

func TestPlotSeriesMonochromeAndMarkers(t *testing.T) {
	opts := style.DefaultOptions().WithMarkers("Radix Sort")
	opts.ColorMode = style.Monochrome
	opts.MarkerStride = 3
	ax := NewAxes("")
	if _, err := PlotSeries(ax, exampleTable(t), Request{XColumn: "Length", XScale: 1000, EndLabels: true}, nil, opts); err != nil {
		t.Fatal(err)
	}
	for _, tr := range ax.Traces() {
		if tr.Style.Color != style.ColorNeutral {
			t.Fatalf("%s colored in monochrome", tr.Name)
		}
		if !tr.EndLabel {
			t.Fatalf("%s missing end label", tr.Name)
		}
	}
	qr, radix := ax.Traces()[0], ax.Traces()[1]
	if qr.MarkerAt(0) {
		t.Fatal("QR Sort should have no markers")
	}
	if !radix.MarkerAt(0) || radix.MarkerAt(1) || !radix.MarkerAt(3) {
		t.Fatal("Radix Sort marker stride wrong")
	}
}

func TestPlotSeriesIgnoresNaN(t *testing.T) {
	ds := mustDataset(t, []string{"Length", "QR Sort"}, []float64{1, 2}, []float64{math.NaN(), 4000})
	max, err := PlotSeries(NewAxes(""), ds, Request{XColumn: "Length", XScale: 1}, nil, style.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if max != 4 {
		t.Fatalf("max = %v", max)
	}
}

func TestPlotSeriesAllNegativeMaxIsZero(t *testing.T) {
	ds := mustDataset(t, []string{"Length", "Delta"}, []float64{1000, 2000}, []float64{-4000, -1000})
	ax := NewAxes("")
	max, err := PlotSeries(ax, ds, Request{XColumn: "Length", XScale: 1000}, nil, style.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if max != 0 {
		t.Fatalf("max = %v, want 0", max)
	}
	if got := ax.Traces()[0].Points[1].Y; got != -1 {
		t.Fatalf("last y = %v, want -1", got)
	}
}

func TestAnnotateDefaults(t *testing.T) {
	ax := NewAxes("")
	Annotate(ax, "n = 10⁶")
	AnnotateAt(ax, "top", 0.5, 0.9)
	got := ax.Annotations()
	if len(got) != 2 {
		t.Fatalf("got %d annotations", len(got))
	}
	if got[0] != (Annotation{Text: "n = 10⁶", X: 0.95, Y: 0.05}) {
		t.Fatalf("default annotation = %+v", got[0])
	}
	if got[1].X != 0.5 || got[1].Y != 0.9 {
		t.Fatalf("explicit annotation = %+v", got[1])
	}
	if ax.Empty() {
		t.Fatal("annotated axes reported empty")
	}
}
