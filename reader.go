package sortcomparer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadDatasets reads datasets from in, one dataset per line, until end of
// input or the first empty line. The empty line is consumed but produces no
// dataset; anything after it is left unread.
//
// Each line is split on whitespace and every token is parsed as a signed
// decimal integer. A token that fails to parse is reported to diag with its
// 1-based line number and token position, then skipped; the rest of the line
// still parses. Every non-empty line yields a dataset, even one whose tokens
// all failed. Malformed input never aborts the read.
func ReadDatasets(in io.Reader, diag io.Writer) []Dataset {
	var datasets []Dataset
	hadErrors := false

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if text == "" {
			break
		}

		dataset := Dataset{}
		for pos, token := range strings.Fields(text) {
			elem, err := strconv.Atoi(token)
			if err != nil {
				hadErrors = true
				fmt.Fprintf(diag, "ERROR: Failed to convert element at line %d, position %d to an integer\n",
					line, pos+1)
				continue
			}
			dataset = append(dataset, elem)
		}
		datasets = append(datasets, dataset)
	}

	// Separate accumulated diagnostics from whatever follows.
	if hadErrors {
		fmt.Fprintln(diag)
	}
	return datasets
}
