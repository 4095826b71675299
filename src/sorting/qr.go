package sorting

import "github.com/pkg/errors"

// QRSort sorts arr with two stable counting-sort passes: by (v-min) mod
// divisor, then by (v-min) / divisor. A divisor of 0 picks isqrt(range)+1,
// which keeps both passes' count tables near sqrt(range) entries.
func QRSort(arr []int64, divisor int64, buf *Buffers) error {
	if divisor < 0 {
		return errors.Wrapf(ErrInvalidDivisor, "qr divisor %d", divisor)
	}
	if len(arr) < 2 {
		return nil
	}
	if buf == nil {
		buf = &Buffers{}
	}
	lo, hi := MinMax(arr)
	rng := hi - lo
	if rng == 0 {
		return nil
	}
	if divisor == 0 {
		divisor = isqrt(rng) + 1
	}
	keys := buf.keys(len(arr))
	aux := buf.aux(len(arr))

	for i, v := range arr {
		keys[i] = (v - lo) % divisor
	}
	CountingSort(arr, keys, aux, buf.counts(int(min64(divisor, rng+1))))

	for i, v := range arr {
		keys[i] = (v - lo) / divisor
	}
	CountingSort(arr, keys, aux, buf.counts(int(rng/divisor)+1))
	return nil
}

// QRCounts is the count table length QRSort needs for a value range.
func QRCounts(rng int64) int64 {
	if rng <= 0 {
		return 0
	}
	return isqrt(rng) + 1
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
