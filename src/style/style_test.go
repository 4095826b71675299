package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorSheetLookup(t *testing.T) {
	sh := ColorSheet()
	s, err := sh.Lookup("Radix Sort")
	require.NoError(t, err)
	assert.Equal(t, ColorC1, s.Color)
	assert.Equal(t, DashDotted, s.Dash)
	assert.False(t, s.Solid())

	qr, err := sh.Lookup("QR Sort")
	require.NoError(t, err)
	assert.True(t, qr.Solid())
}

func TestFallbackIsNeutral(t *testing.T) {
	s, err := ColorSheet().Lookup("Bogo Sort")
	require.NoError(t, err)
	assert.Equal(t, Neutral(), s)
	assert.True(t, s.Solid())
	assert.Equal(t, MarkerNone, s.Marker)
}

func TestStrictSheet(t *testing.T) {
	sh := NewSheet(map[string]Style{"QR Sort": {Color: ColorC0}}, nil)
	assert.False(t, sh.HasFallback())
	_, err := sh.Lookup("Quicksort")
	assert.ErrorIs(t, err, ErrNoStyle)
}

func TestSheetIsImmutable(t *testing.T) {
	dash := []float64{1, 2}
	src := map[string]Style{"a": {Dash: dash}}
	sh := NewSheet(src, nil)
	dash[0] = 42
	src["b"] = Style{}

	s, err := sh.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s.Dash)
	s.Dash[1] = 7
	again, _ := sh.Lookup("a")
	assert.Equal(t, []float64{1, 2}, again.Dash)
	assert.Equal(t, []string{"a"}, sh.Names())
}

func TestMonochromeKeepsDashes(t *testing.T) {
	for _, name := range ColorSheet().Names() {
		c, _ := ColorSheet().Lookup(name)
		m, _ := MonochromeSheet().Lookup(name)
		assert.Equal(t, ColorNeutral, m.Color, name)
		assert.Equal(t, c.Dash, m.Dash, name)
	}
}

func TestOptionsApply(t *testing.T) {
	o := DefaultOptions().WithMarkers("Merge Sort")
	base, _ := ColorSheet().Lookup("Merge Sort")

	s := o.Apply("Merge Sort", base)
	assert.Equal(t, MarkerCircle, s.Marker)
	assert.Equal(t, ColorGreen, s.Color)

	q := o.Apply("Quicksort", base)
	assert.Equal(t, MarkerNone, q.Marker)

	o.ColorMode = Monochrome
	o.LineWidth = 3
	m := o.Apply("Merge Sort", base)
	assert.Equal(t, ColorNeutral, m.Color)
	assert.Equal(t, 3.0, m.Width)
}

func TestStride(t *testing.T) {
	assert.Equal(t, 7, Options{}.Stride())
	assert.Equal(t, 3, Options{MarkerStride: 3}.Stride())
}

func TestParse(t *testing.T) {
	m, err := ParseColorMode("Mono")
	require.NoError(t, err)
	assert.Equal(t, Monochrome, m)
	_, err = ParseColorMode("sepia")
	assert.Error(t, err)

	mk, err := ParseMarker("o")
	require.NoError(t, err)
	assert.Equal(t, MarkerCircle, mk)
	assert.Equal(t, "circle", mk.String())
	_, err = ParseMarker("*")
	assert.Error(t, err)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#1f77b4", Hex(ColorC0))
	assert.Equal(t, "#000000", Hex(ColorNeutral))
}
