package sortcomparer

// Dataset is one input line's worth of integers, in input order. A dataset is
// never mutated after the reader produces it; algorithms operate on clones.
type Dataset []int

// Clone returns an independent copy of the dataset.
func (d Dataset) Clone() Dataset {
	c := make(Dataset, len(d))
	copy(c, d)
	return c
}

// Timings accumulates measured durations for a run. Which views are populated
// depends on the reports requested: Total for the summary report, PerDataset
// for the per-dataset results report. Durations are elapsed microseconds.
type Timings struct {
	Total      map[string]int64   // algorithm name -> summed duration
	PerDataset map[string][]int64 // algorithm name -> one duration per dataset
	Datasets   int                // datasets processed so far
}

// NewTimings creates a Timings with only the requested views allocated.
func NewTimings(wantTotal, wantPerDataset bool) *Timings {
	t := &Timings{}
	if wantTotal {
		t.Total = make(map[string]int64)
	}
	if wantPerDataset {
		t.PerDataset = make(map[string][]int64)
	}
	return t
}

// Record stores one measured duration for the named algorithm in every
// allocated view.
func (t *Timings) Record(name string, micros int64) {
	if t.Total != nil {
		t.Total[name] += micros
	}
	if t.PerDataset != nil {
		t.PerDataset[name] = append(t.PerDataset[name], micros)
	}
}
