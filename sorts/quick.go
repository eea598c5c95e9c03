package sorts

// Quick sorts v in place with quicksort, partitioning around the last element
// of each sublist. O(n log n) on average, O(n²) on already-sorted input.
func Quick(v []int) {
	quickSort(v, 0, len(v)-1)
}

func quickSort(v []int, start, end int) {
	if start >= end {
		return
	}
	p := partition(v, start, end)
	quickSort(v, start, p-1)
	quickSort(v, p+1, end)
}

// partition reorders v[start..end] around the pivot v[end]: a left-to-right
// scan grows a prefix of elements known to be <= the pivot, then the pivot is
// swapped just past that prefix. Returns the pivot's final index.
func partition(v []int, start, end int) int {
	i := start - 1
	for j := start; j < end; j++ {
		if v[j] <= v[end] {
			i++
			v[i], v[j] = v[j], v[i]
		}
	}
	i++
	v[i], v[end] = v[end], v[i]
	return i
}
