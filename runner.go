package sortcomparer

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sortcomparer/sortcomparer/sorts"
)

// Runner times every registered algorithm against every dataset.
type Runner struct {
	Algorithms []sorts.Algorithm
	Output     io.Writer
	Log        *slog.Logger // optional; nil disables debug logging
}

// NewRunner creates a runner over the given algorithms, writing progress to
// output.
func NewRunner(algorithms []sorts.Algorithm, output io.Writer) *Runner {
	return &Runner{
		Algorithms: algorithms,
		Output:     output,
	}
}

// Run measures the wall-clock duration of every algorithm on every dataset,
// in order, and returns the accumulated timings. wantTotal and wantPerDataset
// select which Timings views are populated. A progress line is printed before
// each dataset; a blank line separates the progress output from the reports.
//
// The caller's datasets are never mutated: each invocation sorts a fresh
// clone, constructed inside the timed window so every algorithm pays the same
// copy cost.
func (r *Runner) Run(datasets []Dataset, wantTotal, wantPerDataset bool) *Timings {
	timings := NewTimings(wantTotal, wantPerDataset)

	for i, ds := range datasets {
		fmt.Fprintf(r.Output, "Running sort algorithms on dataset %d...\n", i+1)

		for _, algo := range r.Algorithms {
			start := time.Now()
			algo.Sort(ds.Clone())
			micros := time.Since(start).Microseconds()

			timings.Record(algo.Name, micros)
			if r.Log != nil {
				r.Log.Debug("algorithm timed",
					"algorithm", algo.Name,
					"dataset", i+1,
					"elements", len(ds),
					"micros", micros)
			}
		}
		timings.Datasets++
	}

	fmt.Fprintln(r.Output)
	return timings
}
