package gitlog_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/git-log-summary/internal/gitlog"
	"github.com/sinclairtarget/git-log-summary/internal/logtest"
)

func TestParseCommit(t *testing.T) {
	tests := []struct {
		name     string
		block    string
		expected gitlog.Commit
	}{
		{
			"full",
			`commit b7fa8da016c6e7570be246861ed8c2ca3f0b3abe
Author: Alice <alice@example.com>
Date:   2024-04-01
    more ignored words
 7 files changed, 95 insertions(+), 107 deletions(-)`,
			gitlog.Commit{
				AuthorName:  "Alice",
				AuthorEmail: "alice@example.com",
				Date:        "2024-04-01",
				Insertions:  95,
				Deletions:   107,
			},
		},
		{
			"singular_deletion",
			`commit f18a416618d472aed9e9483609664099be392e50
Author: Charlie <charlie@example.com>
Date:   2024-03-28
 10 files changed, 238 insertions(+), 1 deletion(-)`,
			gitlog.Commit{
				AuthorName:  "Charlie",
				AuthorEmail: "charlie@example.com",
				Date:        "2024-03-28",
				Insertions:  238,
				Deletions:   1,
			},
		},
		{
			"only_deletions",
			`commit c63bfcf27050117d60e5edc43fa8a1667344c07b
Author: Bob <bob@example.com>
Date:   2024-04-01
 1 file changed, 31 deletions(-)`,
			gitlog.Commit{
				AuthorName:  "Bob",
				AuthorEmail: "bob@example.com",
				Date:        "2024-04-01",
				Deletions:   31,
			},
		},
		{
			"no_stat_line",
			`commit abc
Author: Dana Scully <dana@fbi.gov>
Date:   2024-04
    empty commit`,
			gitlog.Commit{
				AuthorName:  "Dana Scully",
				AuthorEmail: "dana@fbi.gov",
				Date:        "2024-04",
			},
		},
		{
			"year_only",
			`commit abc
Author: Dana <dana@fbi.gov>
Date:   1999`,
			gitlog.Commit{
				AuthorName:  "Dana",
				AuthorEmail: "dana@fbi.gov",
				Date:        "1999",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			commit, err := gitlog.ParseCommit(test.block)
			if err != nil {
				t.Fatalf("ParseCommit() returned error: %v", err)
			}

			if diff := cmp.Diff(test.expected, commit); diff != "" {
				t.Errorf("commit is wrong:\n%s", diff)
			}
		})
	}
}

func TestParseCommitMalformed(t *testing.T) {
	tests := []struct {
		name  string
		block string
		field string
	}{
		{
			"no_author",
			"commit abc\nDate:   2024-04-01",
			gitlog.FieldAuthor,
		},
		{
			"author_without_email",
			"commit abc\nAuthor: Alice\nDate:   2024-04-01",
			gitlog.FieldAuthor,
		},
		{
			"no_date",
			"commit abc\nAuthor: Alice <alice@example.com>",
			gitlog.FieldDate,
		},
		{
			"unparseable_date",
			"commit abc\nAuthor: Alice <alice@example.com>\nDate:   April 1st",
			gitlog.FieldDate,
		},
		{
			"insertions_overflow",
			"commit abc\nAuthor: Alice <alice@example.com>\nDate:   2024\n" +
				" 1 file changed, 99999999999999999999999 insertions(+)",
			gitlog.FieldInsertions,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := gitlog.ParseCommit(test.block)
			if err == nil {
				t.Fatal("expected error but got nil")
			}

			var malformedErr *gitlog.MalformedCommitError
			if !errors.As(err, &malformedErr) {
				t.Fatalf("expected MalformedCommitError but got %T", err)
			}

			if malformedErr.Field != test.field {
				t.Errorf(
					"expected field \"%s\" but got \"%s\"",
					test.field,
					malformedErr.Field,
				)
			}
		})
	}
}

func TestParseCommits(t *testing.T) {
	var commits []gitlog.Commit
	for commit, err := range gitlog.ParseCommits(logtest.Lines(logtest.SampleLog)) {
		if err != nil {
			t.Fatalf("error iterating commits: %v", err)
		}
		commits = append(commits, commit)
	}

	if len(commits) != logtest.SampleCommits {
		t.Fatalf(
			"expected %d commits but found %d",
			logtest.SampleCommits,
			len(commits),
		)
	}

	expected := gitlog.Commit{
		AuthorName:  "Bob",
		AuthorEmail: "bob@example.com",
		Date:        "2024-03-29",
		Insertions:  12,
	}
	if diff := cmp.Diff(expected, commits[6]); diff != "" {
		t.Errorf("commit 6 is wrong:\n%s", diff)
	}

	if commits[5].Changes() != 31 {
		t.Errorf("expected 31 changes but got %d", commits[5].Changes())
	}
}

func TestParseCommitsStopsOnError(t *testing.T) {
	dump := `commit aaa
Author: Alice <alice@example.com>
Date:   2024-04-01

commit bbb
Date:   2024-04-01

commit ccc
Author: Alice <alice@example.com>
Date:   2024-04-02
`

	var parsed int
	var errs []error
	for _, err := range gitlog.ParseCommits(logtest.Lines(dump)) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		parsed += 1
	}

	if parsed != 1 {
		t.Errorf("expected 1 commit before error but got %d", parsed)
	}

	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error but got %d", len(errs))
	}

	var malformedErr *gitlog.MalformedCommitError
	if !errors.As(errs[0], &malformedErr) {
		t.Fatalf("expected MalformedCommitError but got %v", errs[0])
	}
}
