package style

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ColorMode selects colored or single-color rendering.
type ColorMode string

const (
	Color      ColorMode = "color"
	Monochrome ColorMode = "monochrome"
)

// ParseColorMode accepts "color", "colour", "monochrome", "mono" (any case).
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "color", "colour":
		return Color, nil
	case "monochrome", "mono":
		return Monochrome, nil
	}
	return "", errors.Errorf("unknown color mode %q", s)
}

// DefaultMarkerStride draws a marker on every 7th point.
const DefaultMarkerStride = 7

// Options are the rendering switches shared by every series in a call.
type Options struct {
	ColorMode ColorMode
	// Markers maps series names to their marker symbol. Names not present get
	// no marker, whatever their sheet style says.
	Markers map[string]Marker
	// EndLabels places the series name right of its last point.
	EndLabels bool
	// MarkerStride is the point interval between markers; <= 0 means the default.
	MarkerStride int
	// LineWidth overrides every style width when > 0.
	LineWidth float64
}

// DefaultOptions is colored output, no markers, no end labels.
func DefaultOptions() Options {
	return Options{ColorMode: Color, MarkerStride: DefaultMarkerStride}
}

// WithMarkers returns a copy of o with the named series drawing circle markers.
func (o Options) WithMarkers(names ...string) Options {
	m := make(map[string]Marker, len(o.Markers)+len(names))
	for k, v := range o.Markers {
		m[k] = v
	}
	for _, n := range names {
		m[n] = MarkerCircle
	}
	o.Markers = m
	return o
}

// Stride returns the effective marker stride.
func (o Options) Stride() int {
	if o.MarkerStride <= 0 {
		return DefaultMarkerStride
	}
	return o.MarkerStride
}

// Apply adjusts a looked-up style for these options.
func (o Options) Apply(name string, s Style) Style {
	if o.ColorMode == Monochrome {
		s.Color = ColorNeutral
	}
	s.Marker = o.Markers[name]
	if o.LineWidth > 0 {
		s.Width = o.LineWidth
	}
	if s.Width <= 0 {
		s.Width = DefaultLineWidth
	}
	return s
}

// Hex renders a color as #rrggbb for backends that take CSS colors.
func Hex(c drawing.Color) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b)
}
