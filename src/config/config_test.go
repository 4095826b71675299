package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randytbushman/sorteval/src/style"
)

func TestParseDefaults(t *testing.T) {
	f, err := Parse(strings.NewReader("panels:\n  - file: a.csv\n  - file: b.csv\n"))
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultDPI), f.DPI)
	assert.Equal(t, "Length", f.XColumn)
	assert.Equal(t, 1000.0, f.XScale)
	assert.Equal(t, 1.05, f.YMargin)
	assert.Equal(t, "Array Length (×10³)", f.Labels.X)
	assert.Equal(t, "Milliseconds", f.Labels.Y)
	assert.Equal(t, style.DefaultMarkerStride, f.Render.MarkerStride)
	assert.Equal(t, 2, f.Rows)
	assert.Equal(t, 1, f.Cols)
	assert.Equal(t, 0, *f.LegendPanel)
	assert.Equal(t, "A", f.Panels[0].Title)
	assert.Equal(t, "B", f.Panels[1].Title)
}

func TestPanelTitle(t *testing.T) {
	assert.Equal(t, "A", PanelTitle(0))
	assert.Equal(t, "H", PanelTitle(7))
	assert.Equal(t, "Z", PanelTitle(25))
	assert.Equal(t, "AA", PanelTitle(26))
}

func TestValidateCollectsProblems(t *testing.T) {
	doc := `
rows: 1
cols: 1
x_limit: [5, 1]
render:
  color_mode: sepia
panels:
  - file: a.csv
  - file: ""
`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	msg := err.Error()
	assert.Contains(t, msg, "do not fit")
	assert.Contains(t, msg, "x_limit")
	assert.Contains(t, msg, "color_mode")
	assert.Contains(t, msg, "panels[1]")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("panels: [{file: a.csv}]\ncolour: red\n"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestOptions(t *testing.T) {
	f, err := Parse(strings.NewReader(`
render:
  color_mode: mono
  markers: [Merge Sort]
  marker_symbol: s
  end_labels: true
  marker_stride: 3
panels: [{file: a.csv}]
`))
	require.NoError(t, err)
	o, err := f.Options()
	require.NoError(t, err)
	assert.Equal(t, style.Monochrome, o.ColorMode)
	assert.Equal(t, style.MarkerSquare, o.Markers["Merge Sort"])
	assert.True(t, o.EndLabels)
	assert.Equal(t, 3, o.MarkerStride)
}

func TestPresetsParse(t *testing.T) {
	names := PresetNames()
	assert.Equal(t, []string{"all-algorithms-labeled", "comparison-based", "qr-vs-radix-6", "qr-vs-radix-8", "qr-vs-radix-mono"}, names)
	for _, n := range names {
		f, err := Preset(n)
		require.NoError(t, err, n)
		assert.LessOrEqual(t, len(f.Panels), f.Rows*f.Cols, n)
	}
	f, err := Preset("qr-vs-radix-8")
	require.NoError(t, err)
	assert.Len(t, f.Panels, 8)
	assert.Equal(t, []string{"Quicksort", "Merge Sort", "Counting Sort"}, f.Exclude)

	_, err = Preset("nope")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func writeTable(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, filepath.Dir(name)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "data/a.csv", "Length,QR Sort,Radix Sort,Quicksort\n1000,5000,3000,1\n2000,9000,7000,1\n")
	writeTable(t, dir, "data/b.csv", "Length,QR Sort,Radix Sort,Quicksort\n1000,2000,3000,1\n2000,4000,20000,1\n")
	cfgPath := filepath.Join(dir, "fig.yaml")
	writeTable(t, dir, "fig.yaml", `
rows: 1
cols: 2
exclude: [Quicksort]
x_limit: [0, 1010]
panels:
  - file: data/a.csv
    annotation: range = 10⁵
  - file: data/b.csv
`)
	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	fig, err := Build(cfg)
	require.NoError(t, err)

	a, b := fig.Panel(0), fig.Panel(1)
	assert.Equal(t, "A", a.Title)
	assert.True(t, a.Legend)
	assert.False(t, b.Legend)
	assert.Len(t, a.Traces(), 2)
	assert.Len(t, a.Annotations(), 1)
	assert.Empty(t, b.Annotations())
	for _, ax := range fig.Panels() {
		require.NotNil(t, ax.YLim)
		assert.InDelta(t, 20*1.05, ax.YLim.Max, 1e-9)
		assert.Equal(t, 1010.0, ax.XLim.Max)
	}
}

func TestBuildMissingFile(t *testing.T) {
	cfg, err := Parse(strings.NewReader("panels: [{file: nowhere.csv}]\n"))
	require.NoError(t, err)
	cfg.SetBaseDir(t.TempDir())
	_, err = Build(cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildWithoutDefaults(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "t.csv", "Length,QR Sort\n1000,5000\n2000,9000\n")
	cfg := &Figure{
		DPI:     100,
		Size:    Size{Width: 2, Height: 2},
		Rows:    1,
		Cols:    1,
		XColumn: "Length",
		XScale:  1000,
		YMargin: 1.05,
		Panels:  []Panel{{File: filepath.Join(dir, "t.csv")}},
	}
	require.Nil(t, cfg.LegendPanel)
	fig, err := Build(cfg)
	require.NoError(t, err)
	assert.True(t, fig.Panel(0).Legend)
	assert.Len(t, fig.Panel(0).Traces(), 1)
}
