package main

import (
	"errors"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"testing"

	"github.com/randytbushman/sorteval/src/dataset"
)

func writeResults(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "0min_value-1000000000max_value.csv")
	body := "Length,Merge Sort,QR Sort,Radix Sort\n10000,900,1500,2000\n20000,1900,3000,4100\n30000,3000,4600,6300\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write results: %v", err)
	}
	return path
}

func TestRunExportMode_WritesVariants(t *testing.T) {
	withExportWidth(t, 900)
	in := writeResults(t)
	out := filepath.Join(t.TempDir(), "charts")
	if err := RunExportMode(in, out, "Length", 1000, "range = 10⁹"); err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, name := range []string{"series_color.png", "series_mono.png", "series_end_labels.png", "series_markers.png"} {
		f, err := os.Open(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		cfg, _, err := image.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if cfg.Width != 900 || cfg.Height != 540 {
			t.Fatalf("%s is %dx%d, want 900x540", name, cfg.Width, cfg.Height)
		}
	}
}

func TestRunExportMode_MissingXColumn(t *testing.T) {
	in := writeResults(t)
	err := RunExportMode(in, t.TempDir(), "Size", 1000, "")
	if !errors.Is(err, dataset.ErrColumnNotFound) {
		t.Fatalf("err = %v, want ErrColumnNotFound", err)
	}
}

func TestRunExportMode_MissingFile(t *testing.T) {
	if err := RunExportMode(filepath.Join(t.TempDir(), "nope.csv"), t.TempDir(), "Length", 1000, ""); err == nil {
		t.Fatalf("expected error for missing input")
	}
}
