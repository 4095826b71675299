package sorting

// MergeSort is a stable top-down merge sort. aux must be at least len(arr)
// long; nil allocates one.
func MergeSort(arr, aux []int64) {
	if len(arr) < 2 {
		return
	}
	if len(aux) < len(arr) {
		aux = make([]int64, len(arr))
	}
	mergeSort(arr, aux[:len(arr)])
}

func mergeSort(arr, aux []int64) {
	if len(arr) < 2 {
		return
	}
	mid := len(arr) / 2
	mergeSort(arr[:mid], aux[:mid])
	mergeSort(arr[mid:], aux[mid:])
	merge(arr, aux)
}

func merge(arr, aux []int64) {
	mid := len(arr) / 2
	left, right := arr[:mid], arr[mid:]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			aux[k] = left[i]
			i++
		} else {
			aux[k] = right[j]
			j++
		}
		k++
	}
	k += copy(aux[k:], left[i:])
	copy(aux[k:], right[j:])
	copy(arr, aux)
}
