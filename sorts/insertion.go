package sorts

// Insertion sorts v in place with insertion sort: each element walks left
// through the sorted prefix until it finds its slot. Stable and adaptive,
// O(n²) worst case.
func Insertion(v []int) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}
