package gitlog

import (
	"iter"
	"strings"
)

// Every record in git log output starts with a line beginning with this.
const commitToken = "commit"

// Groups lines from git log into one block of text per commit.
//
// Lines before the first commit line are dropped, as are blank lines. The
// returned iterator is single-use if lines is.
func Chunk(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		var chunk []string
		open := false

		for line := range lines {
			if strings.HasPrefix(line, commitToken) {
				if len(chunk) > 0 {
					if !yield(strings.Join(chunk, "\n")) {
						return
					}
					chunk = chunk[:0]
				}

				open = true
			}

			if !open || strings.TrimSpace(line) == "" {
				continue
			}

			chunk = append(chunk, line)
		}

		if len(chunk) > 0 {
			yield(strings.Join(chunk, "\n"))
		}
	}
}
