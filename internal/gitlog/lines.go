/*
* Reads and parses the text output of git log.
*
* The expected input is what `git log --shortstat --date=short` prints: a
* "commit <hash>" line starting each record, followed by Author and Date
* headers, the indented message and an optional shortstat summary line.
 */
package gitlog

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Lines longer than this fail the scan instead of being split.
const maxLineSize = 1024 * 1024

// Returns a single-use iterator over the lines read from r.
//
// The finish function reports any read error once iteration has stopped.
func Lines(r io.Reader) (iter.Seq[string], func() error) {
	var iterErr error

	seq := func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}

		iterErr = scanner.Err()
	}

	finish := func() error {
		if iterErr != nil {
			return fmt.Errorf("error while scanning git log: %w", iterErr)
		}

		return nil
	}

	return seq, finish
}
