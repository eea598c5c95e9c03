package sorts

// Merge sorts v in place with top-down merge sort: split at the midpoint,
// recursively sort each half, then merge the two sorted halves through
// temporary buffers. O(n log n), stable.
func Merge(v []int) {
	mergeSort(v, 0, len(v)-1)
}

func mergeSort(v []int, start, end int) {
	if start >= end {
		return
	}
	mid := start + (end-start)/2
	mergeSort(v, start, mid)
	mergeSort(v, mid+1, end)
	mergeRuns(v, start, mid, end)
}

// mergeRuns merges the sorted runs v[start..mid] and v[mid+1..end] by
// repeatedly taking the lesser front element. Taking the left run's element
// on ties keeps the sort stable.
func mergeRuns(v []int, start, mid, end int) {
	left := make([]int, mid-start+1)
	right := make([]int, end-mid)
	copy(left, v[start:mid+1])
	copy(right, v[mid+1:end+1])

	i, j, k := 0, 0, start
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			v[k] = left[i]
			i++
		} else {
			v[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		v[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		v[k] = right[j]
		j++
		k++
	}
}
