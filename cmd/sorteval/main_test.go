package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "0min_value-1000max_value.csv")
	body := "Length,QR Sort,Radix Sort,Quicksort\n1000,5000,3000,9000\n2000,9000,7000,20000\n3000,12000,9000,31000\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPresetsList(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	if !strings.Contains(out, "qr-vs-radix-8\n") || !strings.Contains(out, "comparison-based\n") {
		t.Fatalf("unexpected list:\n%s", out)
	}
	out, err = execute(t, "presets", "comparison-based")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Merge Sort") {
		t.Fatalf("preset source missing markers:\n%s", out)
	}
}

func TestUnknownLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "presets")
	if err == nil || !strings.Contains(err.Error(), `unknown log level "loud"`) {
		t.Fatalf("err = %v, want unknown log level", err)
	}
}

func TestPlotWritesPNG(t *testing.T) {
	dir := t.TempDir()
	table := writeCSV(t, dir)
	out, err := execute(t, "--log-level", "error", "plot", table, "--exclude", "Quicksort", "--markers", "QR Sort", "--annotate", "range = 10³", "--dpi", "80")
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	want := strings.TrimSuffix(table, ".csv") + ".png"
	if strings.TrimSpace(out) != want {
		t.Fatalf("printed %q, want %q", out, want)
	}
	if fi, err := os.Stat(want); err != nil || fi.Size() == 0 {
		t.Fatalf("png not written: %v", err)
	}
}

func TestPlotMissingColumn(t *testing.T) {
	dir := t.TempDir()
	table := writeCSV(t, dir)
	if _, err := execute(t, "plot", table, "--columns", "Heap Sort"); err == nil {
		t.Fatal("expected missing column error")
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "inspect", writeCSV(t, dir))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "3 rows, 4 columns") || !strings.Contains(out, "Radix Sort") {
		t.Fatalf("summary:\n%s", out)
	}
}

func TestFigureFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir)
	cfg := filepath.Join(dir, "fig.yaml")
	doc := "output: " + filepath.Join(dir, "fig.svg") + "\ndpi: 72\nsize: {width: 6, height: 4}\npanels:\n  - file: 0min_value-1000max_value.csv\n    annotation: m = 1,000\n"
	if err := os.WriteFile(cfg, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "figure", "--config", cfg); err != nil {
		t.Fatalf("figure: %v", err)
	}
	if fi, err := os.Stat(filepath.Join(dir, "fig.svg")); err != nil || fi.Size() == 0 {
		t.Fatalf("svg not written: %v", err)
	}
	if _, err := execute(t, "figure"); err == nil {
		t.Fatal("expected error without --config or --preset")
	}
}

func TestBenchSmall(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--log-level", "warn", "bench", "-t", "1", "-s", "50", "-e", "150", "-i", "50", "-M", "500,5000", "-o", dir, "--progress-interval", "0", "--verify")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasSuffix(lines[1], "0min_value-5000max_value.csv") {
		t.Fatalf("printed:\n%s", out)
	}
}
