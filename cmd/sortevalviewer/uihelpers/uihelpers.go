package uihelpers

// ComputeChartDimensions applies width/height clamp rules used for charts.
// Input: desired raw width (e.g., canvas width). Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	// Roughly the 10x6 in page of the single-panel figures.
	h := int(float32(w) * 0.6)
	if h < 360 {
		h = 360
	}
	if h > 900 {
		h = 900
	}
	return w, h
}

// ComputeTableColumnWidths returns the 4 column widths for the column summary
// table given a window width. Order: Column, Min, Mean, Max.
func ComputeTableColumnWidths(winW float32) [4]int {
	const compactBreakpoint = 900
	const ultraCompactBreakpoint = 520
	if winW < ultraCompactBreakpoint {
		return [4]int{120, 0, 80, 0}
	}
	if winW < compactBreakpoint {
		return [4]int{140, 80, 90, 80}
	}
	return [4]int{220, 120, 130, 120}
}

// TruncatePath shortens p to at most n runes, keeping its tail.
func TruncatePath(p string, n int) string {
	r := []rune(p)
	if n <= 3 || len(r) <= n {
		return p
	}
	return "..." + string(r[len(r)-(n-3):])
}

// PushRecent puts path first in list, drops duplicates and keeps at most max
// entries.
func PushRecent(list []string, path string, max int) []string {
	out := []string{path}
	for _, f := range list {
		if f != path && f != "" && len(out) < max {
			out = append(out, f)
		}
	}
	return out
}
