package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sinclairtarget/git-log-summary/internal/format"
	"github.com/sinclairtarget/git-log-summary/internal/pretty"
	"github.com/sinclairtarget/git-log-summary/internal/summary"
)

// Writes one block per date: a header, a row per author, then the total and
// average rows. Blocks are followed by a blank line.
func WriteText(w io.Writer, groups []summary.DateGroup, opts Opts) error {
	bw := bufio.NewWriter(w)

	for _, group := range groups {
		header := fmt.Sprintf("Date: %s", group.Date)
		if opts.Color {
			header = pretty.Style(pretty.Bold, header)
		}
		fmt.Fprintln(bw, header)

		for _, a := range group.Authors {
			fmt.Fprintln(
				bw,
				format.CountsRow(a.Author, a.Counts.Commits, a.Counts.Changes),
			)
		}

		aggregates := []struct {
			label  string
			counts summary.Counts
		}{
			{TotalLabel, group.Total},
			{AverageLabel, group.Average},
		}
		for _, agg := range aggregates {
			row := format.CountsRow(
				agg.label,
				agg.counts.Commits,
				agg.counts.Changes,
			)
			if opts.Color {
				row = pretty.Style(pretty.Dim, row)
			}
			fmt.Fprintln(bw, row)
		}

		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing text summary: %w", err)
	}

	return nil
}
