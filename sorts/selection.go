package sorts

// Selection sorts v in place with selection sort: repeatedly swap the minimum
// of the unsorted suffix into place. O(n²), not stable.
func Selection(v []int) {
	n := len(v)
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if v[j] < v[min] {
				min = j
			}
		}
		if min != i {
			v[i], v[min] = v[min], v[i]
		}
	}
}
