// sortcomparer benchmarks classical sorting algorithms against integer
// datasets read from stdin and prints ranked timing reports.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sortcomparer/sortcomparer"
)

// Distinct exit codes so callers can tell the two usage errors apart.
const (
	exitUsage   = 1 // wrong number of arguments
	exitBadMode = 2 // unrecognized mode argument
)

func main() {
	var verbose bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "sortcomparer [results|summary]",
		Short: "Compare the running time of classical sorting algorithms",
		Long: `sortcomparer reads integer datasets from stdin, one whitespace-separated
dataset per line, terminated by an empty line or end of input. Every dataset
is sorted by each of seven classical algorithms and the wall-clock durations
are reported.

With the argument "summary", print a ranking of the algorithms by total time
over all datasets. With "results", print a per-dataset ranking. With no
argument, print both, summary first.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 1 {
				fmt.Fprintf(os.Stderr, "USAGE: %s [results OR summary]\n", cmd.CommandPath())
				os.Exit(exitUsage)
			}

			modeArg := ""
			if len(args) == 1 {
				modeArg = args[0]
			}
			mode, err := sortcomparer.ParseMode(modeArg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
				os.Exit(exitBadMode)
			}

			if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
				color.NoColor = true
			}

			var logger *slog.Logger
			if verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			}

			os.Exit(sortcomparer.Run(sortcomparer.Config{
				Mode:      mode,
				Input:     os.Stdin,
				Output:    os.Stdout,
				ErrOutput: os.Stderr,
				Log:       logger,
			}))
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "log per-invocation timings to stderr")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored report output")

	if err := cmd.Execute(); err != nil {
		os.Exit(exitUsage)
	}
}
