package sorts

// Bubble sorts v in place with bubble sort, exiting early on the first pass
// that performs no swap. O(n²), stable.
func Bubble(v []int) {
	for swapped := true; swapped; {
		swapped = false
		for i := 1; i < len(v); i++ {
			if v[i-1] > v[i] {
				v[i-1], v[i] = v[i], v[i-1]
				swapped = true
			}
		}
	}
}
