package sorting

import "github.com/pkg/errors"

// RadixSort is an LSD radix sort on v-min with the given radix; 0 means
// len(arr). Each digit is placed with a stable counting sort.
func RadixSort(arr []int64, radix int64, buf *Buffers) error {
	if radix < 0 || radix == 1 {
		return errors.Wrapf(ErrInvalidDivisor, "radix %d", radix)
	}
	if len(arr) < 2 {
		return nil
	}
	if buf == nil {
		buf = &Buffers{}
	}
	if radix == 0 {
		radix = int64(len(arr))
	}
	lo, hi := MinMax(arr)
	rng := hi - lo
	keys := buf.keys(len(arr))
	aux := buf.aux(len(arr))
	for exp := int64(1); exp <= rng; exp *= radix {
		for i, v := range arr {
			keys[i] = (v - lo) / exp % radix
		}
		CountingSort(arr, keys, aux, buf.counts(int(radix)))
		if exp > rng/radix {
			break
		}
	}
	return nil
}
