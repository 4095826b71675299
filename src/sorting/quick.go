package sorting

// Quicksort sorts arr in place, partitioning around the first element. It
// recurses into the smaller side only, so stack depth stays logarithmic.
func Quicksort(arr []int64) {
	for len(arr) > 1 {
		p := partition(arr)
		left, right := arr[:p], arr[p+1:]
		if len(left) < len(right) {
			Quicksort(left)
			arr = right
		} else {
			Quicksort(right)
			arr = left
		}
	}
}

func partition(arr []int64) int {
	pivot, p := arr[0], 0
	for i := 1; i < len(arr); i++ {
		if arr[i] < pivot {
			p++
			arr[i], arr[p] = arr[p], arr[i]
		}
	}
	arr[0], arr[p] = arr[p], arr[0]
	return p
}
