// Package plotter draws benchmark series onto an Axes, the drawing surface for
// one subplot, and renders an Axes to an image with go-chart.
package plotter

import (
	"math"

	"github.com/randytbushman/sorteval/src/style"
)

// Point is one rendered (x, y) pair after scaling.
type Point struct{ X, Y float64 }

// Trace is one series as it was drawn on an Axes.
type Trace struct {
	Name   string
	Points []Point
	Style  style.Style
	// MarkerStride is the point interval between markers; only meaningful
	// when Style.Marker is not MarkerNone.
	MarkerStride int
	EndLabel     bool
}

// MarkerAt reports whether point i carries a marker.
func (t Trace) MarkerAt(i int) bool {
	if t.Style.Marker == style.MarkerNone || t.MarkerStride <= 0 {
		return false
	}
	return i%t.MarkerStride == 0
}

// Annotation is a text label in relative axes coordinates, anchored at its
// bottom-right corner.
type Annotation struct {
	Text string
	X, Y float64
}

// Limits is a closed axis interval.
type Limits struct{ Min, Max float64 }

// Axes collects what plotting calls draw for one subplot. The zero value is
// ready to use.
type Axes struct {
	Title  string
	XLabel string
	YLabel string
	XLim   *Limits
	YLim   *Limits
	// Legend enables the upper-left legend.
	Legend bool

	traces      []Trace
	annotations []Annotation
}

// NewAxes returns an empty surface with the given title.
func NewAxes(title string) *Axes { return &Axes{Title: title} }

// SetXLim fixes the x axis interval.
func (a *Axes) SetXLim(min, max float64) { a.XLim = &Limits{Min: min, Max: max} }

// SetYLim fixes the y axis interval.
func (a *Axes) SetYLim(min, max float64) { a.YLim = &Limits{Min: min, Max: max} }

// Traces returns a deep copy of the drawn series in drawing order.
func (a *Axes) Traces() []Trace {
	out := make([]Trace, len(a.traces))
	for i, t := range a.traces {
		t.Points = append([]Point(nil), t.Points...)
		if t.Style.Dash != nil {
			t.Style.Dash = append([]float64(nil), t.Style.Dash...)
		}
		out[i] = t
	}
	return out
}

// Annotations returns the placed annotations in order.
func (a *Axes) Annotations() []Annotation {
	return append([]Annotation(nil), a.annotations...)
}

// Empty reports whether nothing has been drawn.
func (a *Axes) Empty() bool { return len(a.traces) == 0 && len(a.annotations) == 0 }

// dataBounds returns the extent of all traced points; ok is false when there
// are none.
func (a *Axes) dataBounds() (minX, maxX, minY, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, t := range a.traces {
		for _, p := range t.Points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				continue
			}
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
			ok = true
		}
	}
	return
}
