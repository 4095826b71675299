// Package style holds per-series visual styles and the render options layered
// on top of them.
package style

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoStyle is returned when a series name is unmapped and the sheet has no
// fallback.
var ErrNoStyle = errors.New("no style for series")

// Marker is a point symbol drawn on a series.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerCircle
	MarkerSquare
	MarkerTriangle
	MarkerCross
)

var markerNames = map[string]Marker{
	"":         MarkerNone,
	"none":     MarkerNone,
	"o":        MarkerCircle,
	"circle":   MarkerCircle,
	"s":        MarkerSquare,
	"square":   MarkerSquare,
	"^":        MarkerTriangle,
	"triangle": MarkerTriangle,
	"x":        MarkerCross,
	"cross":    MarkerCross,
}

// ParseMarker accepts matplotlib-style single letters or words.
func ParseMarker(s string) (Marker, error) {
	m, ok := markerNames[s]
	if !ok {
		return MarkerNone, errors.Errorf("unknown marker %q", s)
	}
	return m, nil
}

func (m Marker) String() string {
	switch m {
	case MarkerCircle:
		return "circle"
	case MarkerSquare:
		return "square"
	case MarkerTriangle:
		return "triangle"
	case MarkerCross:
		return "cross"
	}
	return "none"
}

// Style is how one series is drawn. A nil Dash means a solid line. Dash
// lengths are in points, alternating drawn and gap segments.
type Style struct {
	Color  drawing.Color
	Dash   []float64
	Marker Marker
	Width  float64
}

// Solid reports whether the line has no dash pattern.
func (s Style) Solid() bool { return len(s.Dash) == 0 }

func (s Style) clone() Style {
	if s.Dash != nil {
		s.Dash = append([]float64(nil), s.Dash...)
	}
	return s
}

// Sheet is an immutable name to Style table with an optional fallback.
type Sheet struct {
	styles   map[string]Style
	fallback *Style
}

// NewSheet copies styles into a new sheet. A nil fallback makes lookups of
// unmapped names fail with ErrNoStyle.
func NewSheet(styles map[string]Style, fallback *Style) *Sheet {
	sh := &Sheet{styles: make(map[string]Style, len(styles))}
	for k, v := range styles {
		sh.styles[k] = v.clone()
	}
	if fallback != nil {
		fb := fallback.clone()
		sh.fallback = &fb
	}
	return sh
}

// Lookup resolves a series style: the mapped entry, else the fallback, else
// ErrNoStyle.
func (sh *Sheet) Lookup(name string) (Style, error) {
	if s, ok := sh.styles[name]; ok {
		return s.clone(), nil
	}
	if sh.fallback != nil {
		return sh.fallback.clone(), nil
	}
	return Style{}, errors.Wrapf(ErrNoStyle, "%q", name)
}

// Names lists the mapped series names, sorted.
func (sh *Sheet) Names() []string {
	out := make([]string, 0, len(sh.styles))
	for k := range sh.styles {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// HasFallback reports whether unmapped names resolve.
func (sh *Sheet) HasFallback() bool { return sh.fallback != nil }
