package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/randytbushman/sorteval/src/dataset"
)

// RunExportMode renders a fixed set of chart variants of one table and writes
// them as PNGs under outDir. It runs headlessly without creating a window.
func RunExportMode(filePath, outDir, xColumn string, xScale float64, annotation string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "create out dir")
	}
	ds, err := dataset.Load(filePath)
	if err != nil {
		return err
	}
	base := uiState{
		filePath:   filePath,
		data:       ds,
		xColumn:    xColumn,
		xScale:     xScale,
		annotation: annotation,
		hidden:     map[string]bool{},
		markers:    map[string]bool{},
	}
	if !ds.Has(xColumn) {
		return errors.Wrapf(dataset.ErrColumnNotFound, "x column %q", xColumn)
	}

	toRender := []struct {
		name  string
		setup func(*uiState)
	}{
		{"series_color.png", func(*uiState) {}},
		{"series_mono.png", func(s *uiState) { s.monochrome = true }},
		{"series_end_labels.png", func(s *uiState) { s.endLabels = true }},
		{"series_markers.png", func(s *uiState) {
			for _, c := range ds.Others(xColumn) {
				s.markers[c] = true
			}
		}},
	}
	for _, item := range toRender {
		st := base
		st.hidden = map[string]bool{}
		st.markers = map[string]bool{}
		item.setup(&st)
		img := renderChart(&st)
		if err := writePNG(filepath.Join(outDir, item.name), img); err != nil {
			return err
		}
	}
	viewerLog.Infof("exported %d charts to %s", len(toRender), outDir)
	return nil
}

func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrapf(err, "png encode %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
