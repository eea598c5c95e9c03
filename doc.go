// Package sortcomparer compares the time performance of classical sorting
// algorithms on user-supplied integer datasets.
//
// # Overview
//
// Input is line-oriented text: each line is one dataset of whitespace-separated
// signed integers. Reading stops at end of input or at the first empty line.
// Every registered algorithm is timed against every dataset, and the measured
// wall-clock durations are rendered as ranked reports:
//
//   - the summary report ranks algorithms by total time across all datasets
//   - the results report ranks algorithms per dataset, one block per dataset
//
// # Quick Start
//
//	import "github.com/sortcomparer/sortcomparer"
//
//	func main() {
//	    os.Exit(sortcomparer.Run(sortcomparer.Config{
//	        Mode:      sortcomparer.ModeBoth,
//	        Input:     os.Stdin,
//	        Output:    os.Stdout,
//	        ErrOutput: os.Stderr,
//	    }))
//	}
//
// The individual pieces are exported for embedding: ReadDatasets parses input,
// Runner measures, and Reporter renders. The algorithms themselves live in the
// sorts subpackage and are registered once, in a fixed order, in sorts.All.
//
// # Measurement
//
// Each timed invocation hands the algorithm a fresh clone of the dataset, and
// the clone is constructed inside the timed window. Every algorithm therefore
// pays the identical O(n) copy cost, and no invocation can observe another's
// mutations.
package sortcomparer
