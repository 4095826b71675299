package figure

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/randytbushman/sorteval/src/dataset"
	"github.com/randytbushman/sorteval/src/plotter"
	"github.com/randytbushman/sorteval/src/style"
)

func twoPanel(t *testing.T) *Figure {
	t.Helper()
	f, err := New(1, 2, 8, 4, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ds, err := dataset.New([]string{"Length", "QR Sort", "Radix Sort"}, [][]float64{
		{1000, 2000, 3000}, {5000, 9000, 12000}, {3000, 7000, 8000},
	})
	if err != nil {
		t.Fatal(err)
	}
	opts := style.DefaultOptions().WithMarkers("QR Sort")
	globalMax := 0.0
	for i, col := range []string{"QR Sort", "Radix Sort"} {
		ax := f.Panel(i)
		ax.Title = string(rune('A' + i))
		ax.Legend = i == 0
		m, err := plotter.PlotSeries(ax, ds, plotter.Request{XColumn: "Length", Include: []string{col}, XScale: 1000, EndLabels: true}, nil, opts)
		if err != nil {
			t.Fatal(err)
		}
		if m > globalMax {
			globalMax = m
		}
		plotter.Annotate(ax, "n = 10³")
	}
	f.ShareY(globalMax, 0)
	return f
}

func TestNewRejectsBadLayout(t *testing.T) {
	if _, err := New(0, 2, 4, 2, 100); !errors.Is(err, ErrBadLayout) {
		t.Fatalf("err = %v", err)
	}
	if _, err := New(2, 2, 4, 2, 0); !errors.Is(err, ErrBadLayout) {
		t.Fatalf("err = %v", err)
	}
}

func TestPanelOrder(t *testing.T) {
	f, err := New(2, 3, 6, 4, 100)
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 6 || f.Panel(6) != nil || f.Panel(-1) != nil {
		t.Fatalf("panel bounds wrong")
	}
	if f.Panel(4) != f.Panels()[4] {
		t.Fatal("Panel and Panels disagree")
	}
	if c := f.cell(4, 600, 400); c.Min.X != 200 || c.Min.Y != 200 || c.Max.X != 400 || c.Max.Y != 400 {
		t.Fatalf("cell(4) = %v", c)
	}
}

func TestShareY(t *testing.T) {
	f := twoPanel(t)
	for i, ax := range f.Panels() {
		if ax.YLim == nil || ax.YLim.Min != 0 || ax.YLim.Max != 12*1.05 {
			t.Fatalf("panel %d ylim = %+v", i, ax.YLim)
		}
	}
	f.ShareY(0, 2)
	if f.Panel(0).YLim.Max != 1 {
		t.Fatalf("zero max should fall back to 1, got %v", f.Panel(0).YLim.Max)
	}
}

func TestShareX(t *testing.T) {
	f := twoPanel(t)
	f.ShareX(0, 1010)
	for _, ax := range f.Panels() {
		if *ax.XLim != (plotter.Limits{Min: 0, Max: 1010}) {
			t.Fatalf("xlim = %+v", ax.XLim)
		}
	}
}

func TestWritePNGSize(t *testing.T) {
	f := twoPanel(t)
	var buf bytes.Buffer
	if err := f.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 400 {
		t.Fatalf("size = %v, want 800x400", b)
	}
}

func TestSaveFormats(t *testing.T) {
	f := twoPanel(t)
	dir := t.TempDir()
	for _, name := range []string{"out/fig.png", "fig.svg", "fig.pdf", "fig.eps", "fig.html"} {
		path := filepath.Join(dir, name)
		if err := f.Save(path); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
	svg, err := os.ReadFile(filepath.Join(dir, "fig.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Fatal("svg output lacks <svg element")
	}
	html, err := os.ReadFile(filepath.Join(dir, "fig.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "QR Sort") || !strings.Contains(string(html), "panel1") {
		t.Fatal("html output lacks series or panel ids")
	}
}

func TestWriteVectorUnknownFormat(t *testing.T) {
	if err := twoPanel(t).WriteVector(&bytes.Buffer{}, "bmp"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLineType(t *testing.T) {
	cases := map[string]style.Style{
		"solid":  {},
		"dotted": {Dash: style.DashDotted},
		"dashed": {Dash: style.DashDashDot},
	}
	for want, s := range cases {
		if got := lineType(s); got != want {
			t.Fatalf("lineType(%v) = %s, want %s", s.Dash, got, want)
		}
	}
}

func TestEndLabelMark(t *testing.T) {
	tr := plotter.Trace{
		Name:     "Radix Sort",
		Points:   []plotter.Point{{X: 1, Y: 3}, {X: 2, Y: 7}},
		EndLabel: true,
	}
	mark, ok := endLabelMark(tr)
	if !ok {
		t.Fatal("expected a mark point")
	}
	if mark.Name != "Radix Sort" || len(mark.Coordinate) != 2 || mark.Coordinate[0] != 2.0 || mark.Coordinate[1] != 7.0 {
		t.Fatalf("mark = %+v", mark)
	}
	if mark.Label == nil || mark.Label.Position != "right" {
		t.Fatalf("label = %+v, want right of the point", mark.Label)
	}

	tr.EndLabel = false
	if _, ok := endLabelMark(tr); ok {
		t.Fatal("mark with EndLabel off")
	}
	tr.EndLabel = true
	tr.Points = nil
	if _, ok := endLabelMark(tr); ok {
		t.Fatal("mark for a trace without points")
	}
}
