package plotter

import (
	"math"
	"strconv"
)

// NiceCeil rounds max up to a readable bound on the 1, 2, 2.5, 5 x 10^k grid.
// Non-positive input yields 1.
func NiceCeil(max float64) float64 {
	if math.IsNaN(max) || max <= 0 {
		return 1
	}
	step := niceStep(max / 5)
	return math.Ceil(max/step-1e-9) * step
}

// NiceTicks returns tick positions covering [min, max] using a step chosen so
// that roughly n ticks are produced.
func NiceTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			best = step
		}
	}
	start := math.Ceil(min/best-1e-9) * best
	var out []float64
	for v := start; v <= max+best*1e-6; v += best {
		out = append(out, round6(v))
		if len(out) > n+2 {
			break
		}
	}
	return out
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 2.5:
		return 2.5 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// FormatTick gives compact labels: integers above 100, fewer decimals as
// magnitude grows.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case av >= 1:
		return strconv.FormatFloat(round6(v), 'f', -1, 64)
	default:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
}
