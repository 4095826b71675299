package main

import "testing"

func TestProbeChart(t *testing.T) {
	img, err := probeChart(480, 300)
	if err != nil {
		t.Fatalf("probeChart: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 300 {
		t.Fatalf("size = %v, want 480x300", b.Size())
	}
}
