package gitlog

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/sinclairtarget/git-log-summary/internal/format"
)

var authorRegexp *regexp.Regexp
var dateRegexp *regexp.Regexp
var insertionsRegexp *regexp.Regexp
var deletionsRegexp *regexp.Regexp

func init() {
	authorRegexp = regexp.MustCompile(`Author: (.+) <(.+)>`)
	// Dates can be YYYY, YYYY-MM or YYYY-MM-DD
	dateRegexp = regexp.MustCompile(`Date:\s+(\d{4}(?:-\d{2}(?:-\d{2})?)?)`)
	insertionsRegexp = regexp.MustCompile(`(\d+) insertions?`)
	deletionsRegexp = regexp.MustCompile(`(\d+) deletions?`)
}

// Fields of a commit block that ParseCommit looks for.
const (
	FieldAuthor     = "author"
	FieldDate       = "date"
	FieldInsertions = "insertions"
	FieldDeletions  = "deletions"
)

type Commit struct {
	AuthorName  string
	AuthorEmail string
	Date        string // Verbatim from the log, so granularity can vary
	Insertions  int
	Deletions   int
}

// Lines added plus lines removed.
func (c Commit) Changes() int {
	return c.Insertions + c.Deletions
}

func (c Commit) String() string {
	return fmt.Sprintf(
		"{ author:%s %s date:%s insertions:%d deletions:%d }",
		c.AuthorName,
		format.GitEmail(c.AuthorEmail),
		c.Date,
		c.Insertions,
		c.Deletions,
	)
}

// Returned when a commit block is missing a field we need or has one we
// cannot read.
type MalformedCommitError struct {
	Field string
	Block string
	Err   error
}

func (err *MalformedCommitError) Error() string {
	firstLine, _, _ := strings.Cut(err.Block, "\n")
	preview := format.Abbrev(firstLine, 60)

	if err.Err != nil {
		return fmt.Sprintf(
			"malformed commit \"%s\": bad %s: %v",
			preview,
			err.Field,
			err.Err,
		)
	}

	return fmt.Sprintf("malformed commit \"%s\": no %s found", preview, err.Field)
}

func (err *MalformedCommitError) Unwrap() error {
	return err.Err
}

func parseAuthor(block string) (name string, email string, err error) {
	matches := authorRegexp.FindStringSubmatch(block)
	if matches == nil {
		return "", "", &MalformedCommitError{Field: FieldAuthor, Block: block}
	}

	return matches[1], matches[2], nil
}

func parseDate(block string) (string, error) {
	matches := dateRegexp.FindStringSubmatch(block)
	if matches == nil {
		return "", &MalformedCommitError{Field: FieldDate, Block: block}
	}

	return matches[1], nil
}

// Optional line counts. A missing count is zero.
func parseCount(re *regexp.Regexp, field string, block string) (int, error) {
	matches := re.FindStringSubmatch(block)
	if matches == nil {
		return 0, nil
	}

	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, &MalformedCommitError{Field: field, Block: block, Err: err}
	}

	return n, nil
}

// Parses a single block of text produced by Chunk into a commit.
func ParseCommit(block string) (commit Commit, err error) {
	commit.AuthorName, commit.AuthorEmail, err = parseAuthor(block)
	if err != nil {
		return Commit{}, err
	}

	commit.Date, err = parseDate(block)
	if err != nil {
		return Commit{}, err
	}

	commit.Insertions, err = parseCount(insertionsRegexp, FieldInsertions, block)
	if err != nil {
		return Commit{}, err
	}

	commit.Deletions, err = parseCount(deletionsRegexp, FieldDeletions, block)
	if err != nil {
		return Commit{}, err
	}

	return commit, nil
}

// Turns an iterator over lines from git log into an iterator of commits.
//
// Stops after yielding the first error.
func ParseCommits(lines iter.Seq[string]) iter.Seq2[Commit, error] {
	return func(yield func(Commit, error) bool) {
		n := 0
		for block := range Chunk(lines) {
			commit, err := ParseCommit(block)
			if err != nil {
				yield(commit, fmt.Errorf("error parsing commit %d: %w", n, err))
				return
			}

			if !yield(commit, nil) {
				return
			}

			n += 1
		}

		logger().Debug("parsed commits", "count", n)
	}
}
