package sorts

// Heap sorts v in place with heap sort: build a binary max-heap by sifting
// down from the last internal node to the root, then repeatedly swap the root
// with the last unsorted element and re-heapify the shrunken heap. O(n log n),
// in place, not stable.
func Heap(v []int) {
	n := len(v)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(v, n, i)
	}
	for i := n - 1; i >= 0; i-- {
		v[0], v[i] = v[i], v[0]
		siftDown(v, i, 0)
	}
}

// siftDown restores the max-heap property for the subtree rooted at i,
// assuming both child subtrees already are max-heaps. n bounds the heap.
func siftDown(v []int, n, i int) {
	largest := i
	if l := 2*i + 1; l < n && v[l] > v[largest] {
		largest = l
	}
	if r := 2*i + 2; r < n && v[r] > v[largest] {
		largest = r
	}
	if largest != i {
		v[i], v[largest] = v[largest], v[i]
		siftDown(v, n, largest)
	}
}
