// Package figure arranges Axes in a grid, unifies their limits and writes the
// result as PNG, SVG, PDF, EPS, JPEG or HTML.
package figure

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/randytbushman/sorteval/src/applog"
	"github.com/randytbushman/sorteval/src/plotter"
)

// DefaultYMargin leaves 5% headroom above the tallest series.
const DefaultYMargin = 1.05

// ErrBadLayout is returned for non-positive grid or page dimensions.
var ErrBadLayout = errors.New("invalid figure layout")

// Figure is a rows x cols grid of subplots sized in inches.
type Figure struct {
	Rows, Cols int
	// Width and Height are the page size in inches.
	Width, Height float64
	DPI           float64

	panels []*plotter.Axes
}

// New creates a figure with one empty Axes per cell, titled in row-major order.
func New(rows, cols int, width, height, dpi float64) (*Figure, error) {
	if rows <= 0 || cols <= 0 || width <= 0 || height <= 0 || dpi <= 0 {
		return nil, errors.Wrapf(ErrBadLayout, "%dx%d grid, %gx%g in at %g dpi", rows, cols, width, height, dpi)
	}
	f := &Figure{Rows: rows, Cols: cols, Width: width, Height: height, DPI: dpi}
	f.panels = make([]*plotter.Axes, rows*cols)
	for i := range f.panels {
		f.panels[i] = plotter.NewAxes("")
	}
	return f, nil
}

// Len is the number of panels.
func (f *Figure) Len() int { return len(f.panels) }

// Panel returns the i-th Axes in row-major order, or nil when out of range.
func (f *Figure) Panel(i int) *plotter.Axes {
	if i < 0 || i >= len(f.panels) {
		return nil
	}
	return f.panels[i]
}

// Panels returns the Axes in row-major order.
func (f *Figure) Panels() []*plotter.Axes { return append([]*plotter.Axes(nil), f.panels...) }

// ShareY gives every panel the y interval [0, globalMax*margin]. margin <= 0
// means DefaultYMargin; a non-positive globalMax falls back to 1.
func (f *Figure) ShareY(globalMax, margin float64) {
	if margin <= 0 {
		margin = DefaultYMargin
	}
	top := globalMax * margin
	if !(top > 0) {
		top = 1
	}
	for _, ax := range f.panels {
		ax.SetYLim(0, top)
	}
}

// ShareX gives every panel the same x interval.
func (f *Figure) ShareX(min, max float64) {
	for _, ax := range f.panels {
		ax.SetXLim(min, max)
	}
}

// PixelSize is the raster size of the whole figure.
func (f *Figure) PixelSize() (int, int) {
	return int(f.Width*f.DPI + 0.5), int(f.Height*f.DPI + 0.5)
}

// Save writes the figure in the format implied by the extension of path,
// creating parent directories. Unknown extensions fall back to PNG.
func (f *Figure) Save(path string) (err error) {
	defer applog.TimeTrack(time.Now(), "figure save "+path)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create output dir")
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create figure file")
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close figure file")
		}
	}()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg", ".pdf", ".eps", ".jpg", ".jpeg", ".tif", ".tiff":
		err = f.WriteVector(out, strings.TrimPrefix(ext, "."))
	case ".html", ".htm":
		err = f.WriteHTML(out)
	default:
		if ext != ".png" {
			applog.Warnf("unknown figure extension %q, writing PNG", ext)
		}
		err = f.WritePNG(out)
	}
	if err == nil {
		applog.Infof("wrote %s", path)
	}
	return err
}
