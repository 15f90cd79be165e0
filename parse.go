package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sinclairtarget/git-log-summary/internal/gitlog"
)

// Just prints out a simple representation of the commits parsed from the git
// log output for debugging.
func parse(r io.Reader, w io.Writer) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"parse\": %w", err)
		}
	}()

	logger().Debug("called parse()")

	bw := bufio.NewWriter(w)

	lines, finish := gitlog.Lines(r)
	for commit, err := range gitlog.ParseCommits(lines) {
		if err != nil {
			bw.Flush()
			return fmt.Errorf("error iterating commits: %w", err)
		}

		fmt.Fprintf(bw, "%s\n", commit)
	}

	err = finish()
	if err != nil {
		return err
	}

	return bw.Flush()
}
