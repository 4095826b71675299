package sorting

// CountingSort stably reorders arr by keys, or by its own values when keys is
// nil. aux and counts are scratch space and grow if too short; counts needs
// max(keys)-min(keys)+1 entries. keys, when given, must match arr in length.
func CountingSort(arr, keys, aux []int64, counts []int) {
	if len(arr) < 2 {
		return
	}
	if keys == nil {
		keys = arr
	}
	if len(keys) != len(arr) {
		panic("sorting: keys and arr differ in length")
	}
	lo, hi := MinMax(keys)
	if lo == hi {
		return
	}
	span := int(hi-lo) + 1
	if len(counts) < span {
		counts = make([]int, span)
	} else {
		counts = counts[:span]
		for i := range counts {
			counts[i] = 0
		}
	}
	if len(aux) < len(arr) {
		aux = make([]int64, len(arr))
	}
	aux = aux[:len(arr)]

	for _, k := range keys {
		counts[k-lo]++
	}
	for i := 1; i < span; i++ {
		counts[i] += counts[i-1]
	}
	for i := len(arr) - 1; i >= 0; i-- {
		c := keys[i] - lo
		counts[c]--
		aux[counts[c]] = arr[i]
	}
	copy(arr, aux)
}
