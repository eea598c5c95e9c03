package sortcomparer

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/sortcomparer/sortcomparer/sorts"
)

// Styling for terminal output. color drops the escape codes when output is
// not a terminal, so piped output stays byte-exact.
var (
	banner  = color.New(color.Bold)
	fastest = color.New(color.FgGreen)
)

// Reporter renders ranked timing reports to Output. Rankings always cover the
// full algorithm list; equal durations keep the list's registration order.
type Reporter struct {
	Algorithms []sorts.Algorithm
	Output     io.Writer
}

// NewReporter creates a reporter over the given algorithm list.
func NewReporter(algorithms []sorts.Algorithm, output io.Writer) *Reporter {
	return &Reporter{
		Algorithms: algorithms,
		Output:     output,
	}
}

// rankedTime pairs an algorithm name with one measured duration.
type rankedTime struct {
	name   string
	micros int64
}

// rank orders all registered algorithm names by ascending duration. The
// stable sort over the registration-ordered list pins the tie-break order.
func (r *Reporter) rank(duration func(name string) int64) []rankedTime {
	ranked := make([]rankedTime, 0, len(r.Algorithms))
	for _, algo := range r.Algorithms {
		ranked = append(ranked, rankedTime{algo.Name, duration(algo.Name)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].micros < ranked[j].micros
	})
	return ranked
}

// Summary renders the aggregated report: every algorithm ranked by total
// duration across all datasets, with its per-dataset average. With zero
// datasets the average divides by zero and renders as NaN.
func (r *Reporter) Summary(t *Timings) {
	banner.Fprintln(r.Output, "==================== SUMMARY ====================")

	ranked := r.rank(func(name string) int64 { return t.Total[name] })
	for i, rt := range ranked {
		avg := float64(rt.micros) / float64(t.Datasets)
		line := fmt.Sprintf("%d. %s: total time %d microseconds, or %.3f microseconds per dataset on average",
			i+1, rt.name, rt.micros, avg)
		if i == 0 {
			fastest.Fprintln(r.Output, line)
		} else {
			fmt.Fprintln(r.Output, line)
		}
	}
	fmt.Fprintln(r.Output)
}

// Results renders the per-dataset report: one block per dataset, in input
// order, each ranking every algorithm by its duration on that dataset alone.
// With zero datasets only the banner is printed.
func (r *Reporter) Results(t *Timings) {
	banner.Fprintln(r.Output, "==================== RESULTS ====================")

	for i := 0; i < t.Datasets; i++ {
		ranked := r.rank(func(name string) int64 { return t.PerDataset[name][i] })

		fmt.Fprintf(r.Output, "DATASET %d:\n", i+1)
		for j, rt := range ranked {
			line := fmt.Sprintf("%d. %s: %d microseconds", j+1, rt.name, rt.micros)
			if j == 0 {
				fastest.Fprintln(r.Output, line)
			} else {
				fmt.Fprintln(r.Output, line)
			}
		}
		fmt.Fprintln(r.Output)
	}
}
