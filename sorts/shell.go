package sorts

// Shell sorts v in place with shell sort using Shell's original gap sequence
// n/2, n/4, ..., 1. Each pass is an insertion sort over elements gap apart.
func Shell(v []int) {
	n := len(v)
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			for j := i; j >= gap && v[j-gap] > v[j]; j -= gap {
				v[j], v[j-gap] = v[j-gap], v[j]
			}
		}
	}
}
