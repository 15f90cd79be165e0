package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/sinclairtarget/git-log-summary/internal/summary"
)

const dateHeader = "Date"

func commitsHeader(author string) string {
	return author + " commits"
}

func changesHeader(author string) string {
	return author + " changes"
}

// Authors that get columns, in column order.
//
// Starts from the date with the most authors (the first one, on ties). Any
// author missing from that date but present elsewhere is added after it.
func columnAuthors(groups []summary.DateGroup) []string {
	var widest summary.DateGroup
	for _, group := range groups {
		if len(group.Authors) > len(widest.Authors) {
			widest = group
		}
	}

	authors := []string{}
	for _, a := range widest.Authors {
		authors = append(authors, a.Author)
	}

	for _, group := range groups {
		for _, a := range group.Authors {
			if !slices.Contains(authors, a.Author) {
				authors = append(authors, a.Author)
			}
		}
	}

	return authors
}

// Writes a header row and one row per date. Each author gets a commits and a
// changes column, followed by columns for the total and average.
func WriteCSV(w io.Writer, groups []summary.DateGroup) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	authors := columnAuthors(groups)

	header := []string{dateHeader}
	for _, author := range authors {
		header = append(header, commitsHeader(author), changesHeader(author))
	}
	header = append(
		header,
		commitsHeader(TotalLabel),
		changesHeader(TotalLabel),
		commitsHeader(AverageLabel),
		changesHeader(AverageLabel),
	)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, group := range groups {
		if err := cw.Write(toRecord(group, authors)); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("error flushing CSV writer: %w", err)
	}

	return nil
}

func toRecord(group summary.DateGroup, authors []string) []string {
	record := []string{group.Date}

	for _, author := range authors {
		counts, ok := group.Author(author)
		if ok {
			record = append(
				record,
				strconv.Itoa(counts.Commits),
				strconv.Itoa(counts.Changes),
			)
		} else {
			record = append(record, "", "")
		}
	}

	return append(
		record,
		strconv.Itoa(group.Total.Commits),
		strconv.Itoa(group.Total.Changes),
		strconv.Itoa(group.Average.Commits),
		strconv.Itoa(group.Average.Changes),
	)
}
