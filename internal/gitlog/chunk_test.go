package gitlog_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/git-log-summary/internal/gitlog"
	"github.com/sinclairtarget/git-log-summary/internal/logtest"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name     string
		dump     string
		expected []string
	}{
		{
			"empty",
			"",
			nil,
		},
		{
			"only_blank_lines",
			"\n\n   \n",
			nil,
		},
		{
			"single_commit",
			"commit abc\nAuthor: A <a@x>\n\nDate:   2024\n",
			[]string{"commit abc\nAuthor: A <a@x>\nDate:   2024"},
		},
		{
			"leading_boilerplate",
			"warning: something\n\ncommit abc\nAuthor: A <a@x>\n",
			[]string{"commit abc\nAuthor: A <a@x>"},
		},
		{
			"two_commits",
			"commit abc\nAuthor: A <a@x>\n\ncommit def\nAuthor: B <b@x>",
			[]string{
				"commit abc\nAuthor: A <a@x>",
				"commit def\nAuthor: B <b@x>",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			chunks := slices.Collect(gitlog.Chunk(logtest.Lines(test.dump)))
			if diff := cmp.Diff(test.expected, chunks); diff != "" {
				t.Errorf("chunks are wrong:\n%s", diff)
			}
		})
	}
}

func TestChunkSample(t *testing.T) {
	chunks := slices.Collect(gitlog.Chunk(logtest.Lines(logtest.SampleLog)))
	if len(chunks) != logtest.SampleCommits {
		t.Fatalf(
			"expected %d chunks but found %d",
			logtest.SampleCommits,
			len(chunks),
		)
	}

	for i, chunk := range chunks {
		if !strings.HasPrefix(chunk, "commit ") {
			t.Errorf("chunk %d does not start with commit line: %q", i, chunk)
		}

		if strings.Contains(chunk, "\n\n") {
			t.Errorf("chunk %d contains a blank line: %q", i, chunk)
		}
	}
}

func TestChunkStopsEarly(t *testing.T) {
	var first string
	for chunk := range gitlog.Chunk(logtest.Lines(logtest.SampleLog)) {
		first = chunk
		break
	}

	if !strings.HasPrefix(first, "commit b7fa8da") {
		t.Errorf("expected first chunk to be first commit but got %q", first)
	}
}
