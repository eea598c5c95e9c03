package sortcomparer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortcomparer/sortcomparer"
	"github.com/sortcomparer/sortcomparer/sorts"
)

func TestRunner_ProgressLines(t *testing.T) {
	var out bytes.Buffer
	runner := sortcomparer.NewRunner(sorts.All, &out)

	datasets := []sortcomparer.Dataset{{3, 1, 2}, {5, 4}}
	runner.Run(datasets, true, true)

	assert.Equal(t,
		"Running sort algorithms on dataset 1...\n"+
			"Running sort algorithms on dataset 2...\n"+
			"\n",
		out.String())
}

// TestRunner_TimingsInvariants checks that every algorithm gets exactly one
// recorded duration per dataset and that the totals are the per-dataset sums.
func TestRunner_TimingsInvariants(t *testing.T) {
	var out bytes.Buffer
	runner := sortcomparer.NewRunner(sorts.All, &out)

	datasets := []sortcomparer.Dataset{
		{9, 2, 7, 4, 1, 8, 3},
		{10, 20, 30},
		{},
	}
	timings := runner.Run(datasets, true, true)

	assert.Equal(t, len(datasets), timings.Datasets)
	require.Len(t, timings.Total, len(sorts.All))
	require.Len(t, timings.PerDataset, len(sorts.All))

	for _, algo := range sorts.All {
		perDataset, ok := timings.PerDataset[algo.Name]
		require.True(t, ok, "%s missing from per-dataset timings", algo.Name)
		require.Len(t, perDataset, len(datasets))

		var sum int64
		for _, micros := range perDataset {
			assert.GreaterOrEqual(t, micros, int64(0))
			sum += micros
		}
		assert.Equal(t, sum, timings.Total[algo.Name],
			"%s: total must equal the sum of per-dataset durations", algo.Name)
	}
}

// TestRunner_DoesNotMutateDatasets checks the clone-on-invoke contract: the
// canonical datasets keep their original element order across the whole run.
func TestRunner_DoesNotMutateDatasets(t *testing.T) {
	var out bytes.Buffer
	runner := sortcomparer.NewRunner(sorts.All, &out)

	datasets := []sortcomparer.Dataset{{5, 3, 1, 4, 2}, {2, 1}}
	runner.Run(datasets, true, true)

	assert.Equal(t, sortcomparer.Dataset{5, 3, 1, 4, 2}, datasets[0])
	assert.Equal(t, sortcomparer.Dataset{2, 1}, datasets[1])
}

func TestRunner_OnlyRequestedViews(t *testing.T) {
	datasets := []sortcomparer.Dataset{{2, 1}}

	var out bytes.Buffer
	timings := sortcomparer.NewRunner(sorts.All, &out).Run(datasets, true, false)
	assert.NotNil(t, timings.Total)
	assert.Nil(t, timings.PerDataset)

	out.Reset()
	timings = sortcomparer.NewRunner(sorts.All, &out).Run(datasets, false, true)
	assert.Nil(t, timings.Total)
	assert.NotNil(t, timings.PerDataset)
}

func TestRunner_NoDatasets(t *testing.T) {
	var out bytes.Buffer
	timings := sortcomparer.NewRunner(sorts.All, &out).Run(nil, true, true)

	assert.Equal(t, 0, timings.Datasets)
	assert.Empty(t, timings.Total)
	assert.Empty(t, timings.PerDataset)
	assert.Equal(t, "\n", out.String(), "no progress lines without datasets")
}
