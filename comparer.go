package sortcomparer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sortcomparer/sortcomparer/sorts"
)

// Mode selects which reports a run produces.
type Mode int

const (
	ModeBoth    Mode = iota // summary first, then per-dataset results
	ModeSummary             // aggregated report only
	ModeResults             // per-dataset report only
)

// ParseMode maps the CLI mode argument to a Mode. The empty string selects
// both reports. The match is case-sensitive.
func ParseMode(arg string) (Mode, error) {
	switch arg {
	case "":
		return ModeBoth, nil
	case "summary":
		return ModeSummary, nil
	case "results":
		return ModeResults, nil
	}
	return 0, fmt.Errorf("invalid program argument %q, try 'results' or 'summary'", arg)
}

// Config holds the configuration for one comparison run.
type Config struct {
	Mode      Mode
	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
	Log       *slog.Logger // optional debug logging, never written to Output
}

// Run reads datasets from cfg.Input, times every registered algorithm against
// each of them and renders the reports selected by cfg.Mode to cfg.Output.
// Parse diagnostics go to cfg.ErrOutput. Returns the process exit code.
func Run(cfg Config) int {
	wantTotal := cfg.Mode == ModeBoth || cfg.Mode == ModeSummary
	wantPerDataset := cfg.Mode == ModeBoth || cfg.Mode == ModeResults

	datasets := ReadDatasets(cfg.Input, cfg.ErrOutput)
	if cfg.Log != nil {
		cfg.Log.Debug("datasets read", "count", len(datasets))
	}

	runner := NewRunner(sorts.All, cfg.Output)
	runner.Log = cfg.Log
	timings := runner.Run(datasets, wantTotal, wantPerDataset)

	reporter := NewReporter(sorts.All, cfg.Output)
	if wantTotal {
		reporter.Summary(timings)
	}
	if wantPerDataset {
		reporter.Results(timings)
	}
	return 0
}
