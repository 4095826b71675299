package style

import "github.com/wcharczuk/go-chart/v2/drawing"

// DefaultLineWidth is the stroke width of every built-in style.
const DefaultLineWidth = 2.0

// Matplotlib default cycle colors the original figures used.
var (
	ColorC0      = drawing.ColorFromHex("1f77b4")
	ColorC1      = drawing.ColorFromHex("ff7f0e")
	ColorC2      = drawing.ColorFromHex("2ca02c")
	ColorC3      = drawing.ColorFromHex("d62728")
	ColorGreen   = drawing.ColorFromHex("008000")
	ColorNeutral = drawing.ColorBlack
)

// Dash patterns, in points.
var (
	DashDotted  = []float64{1.2, 1.2}
	DashDashDot = []float64{3, 2, 1.2, 2}
	DashDashed  = []float64{6, 2}
)

// Neutral is the fallback for unmapped series: black, solid, no marker.
func Neutral() Style {
	return Style{Color: ColorNeutral, Width: DefaultLineWidth}
}

func algorithmStyles() map[string]Style {
	return map[string]Style{
		"QR Sort":       {Color: ColorC0, Width: DefaultLineWidth},
		"Radix Sort":    {Color: ColorC1, Dash: DashDotted, Width: DefaultLineWidth},
		"Counting Sort": {Color: ColorC2, Dash: DashDashDot, Width: DefaultLineWidth},
		"Quicksort":     {Color: ColorC3, Dash: DashDashed, Width: DefaultLineWidth},
		"Merge Sort":    {Color: ColorGreen, Width: DefaultLineWidth},
	}
}

// ColorSheet is the colored style table with the neutral fallback.
func ColorSheet() *Sheet {
	fb := Neutral()
	return NewSheet(algorithmStyles(), &fb)
}

// MonochromeSheet keeps the dash patterns but draws everything in the neutral
// color.
func MonochromeSheet() *Sheet {
	styles := algorithmStyles()
	for k, s := range styles {
		s.Color = ColorNeutral
		styles[k] = s
	}
	fb := Neutral()
	return NewSheet(styles, &fb)
}

// SheetFor returns the built-in sheet for a color mode.
func SheetFor(mode ColorMode) *Sheet {
	if mode == Monochrome {
		return MonochromeSheet()
	}
	return ColorSheet()
}
