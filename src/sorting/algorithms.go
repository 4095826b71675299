package sorting

// Algorithm is a named sort as it appears in result tables.
type Algorithm struct {
	Name string
	// Sort sorts arr in place using buf for scratch space.
	Sort func(arr []int64, buf *Buffers) error
	// CountsFor is the count table length the sort allocates for n values
	// spanning rng. Zero for comparison sorts.
	CountsFor func(n int, rng int64) int64
}

func none(int, int64) int64 { return 0 }

var algorithms = []Algorithm{
	{
		Name: "Merge Sort",
		Sort: func(arr []int64, buf *Buffers) error {
			MergeSort(arr, buf.aux(len(arr)))
			return nil
		},
		CountsFor: none,
	},
	{
		Name: "Quicksort",
		Sort: func(arr []int64, _ *Buffers) error {
			Quicksort(arr)
			return nil
		},
		CountsFor: none,
	},
	{
		Name: "Counting Sort",
		Sort: func(arr []int64, buf *Buffers) error {
			if len(arr) < 2 {
				return nil
			}
			lo, hi := MinMax(arr)
			CountingSort(arr, nil, buf.aux(len(arr)), buf.counts(int(hi-lo)+1))
			return nil
		},
		CountsFor: func(_ int, rng int64) int64 { return rng + 1 },
	},
	{
		Name:      "Radix Sort",
		Sort:      func(arr []int64, buf *Buffers) error { return RadixSort(arr, 0, buf) },
		CountsFor: func(n int, _ int64) int64 { return int64(n) },
	},
	{
		Name:      "QR Sort",
		Sort:      func(arr []int64, buf *Buffers) error { return QRSort(arr, 0, buf) },
		CountsFor: func(_ int, rng int64) int64 { return QRCounts(rng) },
	},
}

// Algorithms returns every registered algorithm in table column order.
func Algorithms() []Algorithm { return append([]Algorithm(nil), algorithms...) }

// Names returns the registered names in table column order.
func Names() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.Name
	}
	return names
}

// Lookup finds an algorithm by its table name.
func Lookup(name string) (Algorithm, bool) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm{}, false
}
