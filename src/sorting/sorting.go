// Package sorting implements the algorithms the benchmarks compare. All of
// them sort []int64 in place in ascending order.
package sorting

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidDivisor is returned for a QR divisor or radix that cannot make
// progress.
var ErrInvalidDivisor = errors.New("invalid divisor")

// Buffers holds scratch space reused across sorts of arrays up to the same
// length. The zero value is ready to use; slices grow on demand.
type Buffers struct {
	Aux    []int64
	Keys   []int64
	Counts []int
}

func (b *Buffers) aux(n int) []int64 {
	if cap(b.Aux) < n {
		b.Aux = make([]int64, n)
	}
	return b.Aux[:n]
}

func (b *Buffers) keys(n int) []int64 {
	if cap(b.Keys) < n {
		b.Keys = make([]int64, n)
	}
	return b.Keys[:n]
}

func (b *Buffers) counts(n int) []int {
	if cap(b.Counts) < n {
		b.Counts = make([]int, n)
	}
	return b.Counts[:n]
}

// MinMax returns the extremes of a non-empty slice.
func MinMax(arr []int64) (lo, hi int64) {
	lo, hi = arr[0], arr[0]
	for _, v := range arr[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// IsSorted reports whether arr is in non-decreasing order.
func IsSorted(arr []int64) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			return false
		}
	}
	return true
}

// Linspace returns n values evenly spaced from start to end inclusive, rounded
// to the nearest integer. n <= 1 yields just start.
func Linspace(start, end int64, n int) []int64 {
	if n <= 1 {
		return []int64{start}
	}
	out := make([]int64, n)
	step := float64(end-start) / float64(n-1)
	for i := range out {
		out[i] = start + int64(math.Round(step*float64(i)))
	}
	return out
}

// isqrt is floor(sqrt(v)) for v >= 0.
func isqrt(v int64) int64 {
	r := int64(math.Sqrt(float64(v)))
	for r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}
