// Package sorts implements the classical comparison sorts that sortcomparer
// measures: insertion, selection, bubble, heap, merge, quick and shell sort.
//
// Every sort operates in place on the slice it is given and must terminate on
// any finite input, including empty and single-element slices. Callers that
// need their data preserved pass a copy; the harness does exactly that.
package sorts

// Func sorts the given slice in place.
type Func func([]int)

// Algorithm binds a display name to its sort function.
type Algorithm struct {
	Name string
	Sort Func
}

// All registers every algorithm exactly once. The slice order is the
// iteration order of the harness and the tie-break order of the reports, so
// it must stay fixed.
var All = []Algorithm{
	{"Insertion Sort", Insertion},
	{"Selection Sort", Selection},
	{"Bubble Sort", Bubble},
	{"Heap Sort", Heap},
	{"Merge Sort", Merge},
	{"Quick Sort", Quick},
	{"Shell Sort", Shell},
}
