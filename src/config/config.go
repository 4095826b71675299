// Package config describes a figure declaratively and builds it.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/randytbushman/sorteval/src/figure"
	"github.com/randytbushman/sorteval/src/style"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid figure config")

// Defaults applied to fields left empty.
const (
	DefaultDPI     = 600
	DefaultXColumn = "Length"
	DefaultXScale  = 1000
	DefaultXLabel  = "Array Length (×10³)"
	DefaultYLabel  = "Milliseconds"
	DefaultWidth   = 10.0
	DefaultHeight  = 6.0
)

// Size is a page size in inches.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Labels are the axis names shared by every panel.
type Labels struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// Render mirrors style.Options in YAML form.
type Render struct {
	ColorMode    string   `yaml:"color_mode"`
	Markers      []string `yaml:"markers"`
	MarkerSymbol string   `yaml:"marker_symbol"`
	EndLabels    bool     `yaml:"end_labels"`
	MarkerStride int      `yaml:"marker_stride"`
	LineWidth    float64  `yaml:"line_width"`
}

// Panel is one subplot fed by one table.
type Panel struct {
	File       string `yaml:"file"`
	Sheet      string `yaml:"sheet,omitempty"`
	Title      string `yaml:"title"`
	Annotation string `yaml:"annotation"`
}

// Figure is the whole document.
type Figure struct {
	Output  string    `yaml:"output"`
	DPI     float64   `yaml:"dpi"`
	Size    Size      `yaml:"size"`
	Rows    int       `yaml:"rows"`
	Cols    int       `yaml:"cols"`
	XColumn string    `yaml:"x_column"`
	XScale  float64   `yaml:"x_scale"`
	Columns []string  `yaml:"columns"`
	Exclude []string  `yaml:"exclude"`
	XLimit  []float64 `yaml:"x_limit"`
	YMargin float64   `yaml:"y_margin"`
	Labels  Labels    `yaml:"labels"`
	// LegendPanel is the row-major index of the panel carrying the legend;
	// negative disables it.
	LegendPanel *int    `yaml:"legend_panel"`
	Render      Render  `yaml:"render"`
	Panels      []Panel `yaml:"panels"`

	// baseDir resolves relative panel files; empty means the working directory.
	baseDir string
}

// Parse decodes a YAML document, fills defaults and validates. Unknown keys are
// rejected.
func Parse(r io.Reader) (*Figure, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Figure
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrInvalidConfig, "empty document")
		}
		return nil, errors.Wrap(err, "decode figure config")
	}
	f.ApplyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads a config file; relative panel paths resolve against its directory.
func Load(path string) (*Figure, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read figure config")
	}
	f, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	f.baseDir = filepath.Dir(path)
	return f, nil
}

// SetBaseDir changes where relative panel files are looked up.
func (f *Figure) SetBaseDir(dir string) { f.baseDir = dir }

// Resolve returns a panel file path relative to the base directory.
func (f *Figure) Resolve(file string) string {
	if f.baseDir == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(f.baseDir, file)
}

// ApplyDefaults fills zero fields.
func (f *Figure) ApplyDefaults() {
	if f.DPI == 0 {
		f.DPI = DefaultDPI
	}
	if f.Size.Width == 0 {
		f.Size.Width = DefaultWidth
	}
	if f.Size.Height == 0 {
		f.Size.Height = DefaultHeight
	}
	if f.Rows == 0 && f.Cols == 0 {
		f.Rows, f.Cols = len(f.Panels), 1
	}
	if f.XColumn == "" {
		f.XColumn = DefaultXColumn
	}
	if f.XScale == 0 {
		f.XScale = DefaultXScale
	}
	if f.YMargin == 0 {
		f.YMargin = figure.DefaultYMargin
	}
	if f.Labels.X == "" {
		f.Labels.X = DefaultXLabel
	}
	if f.Labels.Y == "" {
		f.Labels.Y = DefaultYLabel
	}
	if f.LegendPanel == nil {
		zero := 0
		f.LegendPanel = &zero
	}
	if f.Render.MarkerStride == 0 {
		f.Render.MarkerStride = style.DefaultMarkerStride
	}
	for i := range f.Panels {
		if f.Panels[i].Title == "" {
			f.Panels[i].Title = PanelTitle(i)
		}
	}
}

// PanelTitle is the default letter title: A, B, ..., Z, AA, AB, ...
func PanelTitle(i int) string {
	s := ""
	for i++; i > 0; i = (i - 1) / 26 {
		s = string(rune('A'+(i-1)%26)) + s
	}
	return s
}

// Validate reports every problem in one error wrapping ErrInvalidConfig.
func (f *Figure) Validate() error {
	var problems []string
	add := func(format string, a ...interface{}) { problems = append(problems, fmt.Sprintf(format, a...)) }

	if f.DPI <= 0 {
		add("dpi must be positive")
	}
	if f.Size.Width <= 0 || f.Size.Height <= 0 {
		add("size must be positive")
	}
	if f.Rows <= 0 || f.Cols <= 0 {
		add("rows and cols must be positive")
	}
	if len(f.Panels) == 0 {
		add("no panels")
	}
	if f.Rows > 0 && f.Cols > 0 && len(f.Panels) > f.Rows*f.Cols {
		add("%d panels do not fit a %dx%d grid", len(f.Panels), f.Rows, f.Cols)
	}
	if f.XScale == 0 {
		add("x_scale must be nonzero")
	}
	if f.YMargin <= 0 {
		add("y_margin must be positive")
	}
	if len(f.XLimit) != 0 && (len(f.XLimit) != 2 || f.XLimit[1] <= f.XLimit[0]) {
		add("x_limit must be [min, max] with min < max")
	}
	if _, err := style.ParseColorMode(f.Render.ColorMode); err != nil {
		add("render.color_mode: %v", err)
	}
	if f.Render.MarkerSymbol != "" {
		if _, err := style.ParseMarker(f.Render.MarkerSymbol); err != nil {
			add("render.marker_symbol: %v", err)
		}
	}
	if f.Render.MarkerStride < 0 {
		add("render.marker_stride must not be negative")
	}
	if f.LegendPanel != nil && *f.LegendPanel >= len(f.Panels) && len(f.Panels) > 0 {
		add("legend_panel %d out of range", *f.LegendPanel)
	}
	for i, p := range f.Panels {
		if strings.TrimSpace(p.File) == "" {
			add("panels[%d]: file is required", i)
		}
	}
	if len(problems) > 0 {
		return errors.Wrap(ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Options converts the render block.
func (f *Figure) Options() (style.Options, error) {
	mode, err := style.ParseColorMode(f.Render.ColorMode)
	if err != nil {
		return style.Options{}, err
	}
	o := style.Options{
		ColorMode:    mode,
		EndLabels:    f.Render.EndLabels,
		MarkerStride: f.Render.MarkerStride,
		LineWidth:    f.Render.LineWidth,
	}
	sym := style.MarkerCircle
	if f.Render.MarkerSymbol != "" {
		if sym, err = style.ParseMarker(f.Render.MarkerSymbol); err != nil {
			return style.Options{}, err
		}
	}
	if len(f.Render.Markers) > 0 {
		o.Markers = make(map[string]style.Marker, len(f.Render.Markers))
		for _, n := range f.Render.Markers {
			o.Markers[n] = sym
		}
	}
	return o, nil
}
