package main

import (
	"math"
	"strings"
	"testing"

	"github.com/randytbushman/sorteval/src/dataset"
)

func TestSummarize(t *testing.T) {
	ds, err := dataset.ReadDelimited(strings.NewReader("Length,QR Sort\n1,2\n3,4\n5,9\n"), ',')
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	stats := summarize(ds)
	if len(stats) != 2 {
		t.Fatalf("got %d rows, want 2", len(stats))
	}
	qr := stats[1]
	if qr.Name != "QR Sort" || qr.Min != 2 || qr.Max != 9 || math.Abs(qr.Mean-5) > 1e-12 {
		t.Fatalf("unexpected stats %+v", qr)
	}
	if got := statCell(stats, 0, 2); got != "Mean" {
		t.Fatalf("header = %q", got)
	}
	if got := statCell(stats, 2, 3); got != "9" {
		t.Fatalf("max cell = %q", got)
	}
	if got := statCell(stats, 9, 0); got != "" {
		t.Fatalf("out-of-range cell = %q", got)
	}
}

func TestStatCell_Empty(t *testing.T) {
	stats := []columnStat{{Name: "x", Empty: true}}
	if got := statCell(stats, 1, 1); got != "-" {
		t.Fatalf("empty column cell = %q", got)
	}
}

func TestContains(t *testing.T) {
	if !contains([]string{"a", "b"}, "b") || contains(nil, "a") {
		t.Fatalf("contains misbehaves")
	}
}
