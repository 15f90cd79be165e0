// Handles summations over commits, grouped by date and author.
package summary

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/sinclairtarget/git-log-summary/internal/gitlog"
)

type Counts struct {
	Commits int
	Changes int // Lines added plus lines removed
}

func (a Counts) Add(b Counts) Counts {
	return Counts{
		Commits: a.Commits + b.Commits,
		Changes: a.Changes + b.Changes,
	}
}

type AuthorCounts struct {
	Author string
	Counts Counts
}

// Counts for all authors that committed on a single date.
//
// Total and Average only cover the authors in Authors and are computed once
// all commits for the date have been tallied.
type DateGroup struct {
	Date    string
	Authors []AuthorCounts // In order of first commit seen
	Total   Counts
	Average Counts
}

// Looks up the counts for a real author. Never matches Total or Average.
func (g DateGroup) Author(name string) (Counts, bool) {
	for _, a := range g.Authors {
		if a.Author == name {
			return a.Counts, true
		}
	}

	return Counts{}, false
}

type Opts struct {
	Exclude []string // Author names or emails whose commits are skipped
}

func (opts Opts) excludes(commit gitlog.Commit) bool {
	return slices.Contains(opts.Exclude, commit.AuthorName) ||
		slices.Contains(opts.Exclude, commit.AuthorEmail)
}

// A non-final tally for one date that can still take more commits.
type dateTally struct {
	date    string
	authors []string
	counts  map[string]Counts
}

func newDateTally(date string) *dateTally {
	return &dateTally{
		date:   date,
		counts: map[string]Counts{},
	}
}

func (t *dateTally) add(commit gitlog.Commit) {
	counts, ok := t.counts[commit.AuthorName]
	if !ok {
		t.authors = append(t.authors, commit.AuthorName)
	}

	t.counts[commit.AuthorName] = counts.Add(Counts{
		Commits: 1,
		Changes: commit.Changes(),
	})
}

// Returns false if no author has been tallied for the date.
func (t *dateTally) final() (DateGroup, bool) {
	if len(t.authors) == 0 {
		return DateGroup{}, false
	}

	group := DateGroup{
		Date:    t.date,
		Authors: make([]AuthorCounts, 0, len(t.authors)),
	}

	for _, author := range t.authors {
		counts := t.counts[author]
		group.Authors = append(group.Authors, AuthorCounts{
			Author: author,
			Counts: counts,
		})
		group.Total = group.Total.Add(counts)
	}

	n := len(t.authors)
	group.Average = Counts{
		Commits: group.Total.Commits / n,
		Changes: group.Total.Changes / n,
	}

	return group, true
}

// Groups commits by date and then by author name.
//
// Groups are returned in the order their date was first seen.
func Aggregate(
	commits iter.Seq2[gitlog.Commit, error],
	opts Opts,
) ([]DateGroup, error) {
	start := time.Now()

	var dates []string
	tallies := map[string]*dateTally{}
	numExcluded := 0

	for commit, err := range commits {
		if err != nil {
			return nil, fmt.Errorf("error iterating commits: %w", err)
		}

		if opts.excludes(commit) {
			numExcluded += 1
			continue
		}

		tally, ok := tallies[commit.Date]
		if !ok {
			tally = newDateTally(commit.Date)
			tallies[commit.Date] = tally
			dates = append(dates, commit.Date)
		}

		tally.add(commit)
	}

	groups := make([]DateGroup, 0, len(dates))
	for _, date := range dates {
		if group, ok := tallies[date].final(); ok {
			groups = append(groups, group)
		}
	}

	elapsed := time.Now().Sub(start)
	logger().Debug(
		"aggregated commits",
		"dates",
		len(groups),
		"excluded",
		numExcluded,
		"duration_ms",
		elapsed.Milliseconds(),
	)

	return groups, nil
}
