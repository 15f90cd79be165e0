/*
* Utility functions for formatting output.
 */
package format

import (
	"fmt"
	"unicode/utf8"
)

// Print string with max length, truncating with ellipsis.
func Abbrev(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}

func GitEmail(email string) string {
	return fmt.Sprintf("<%s>", email)
}

// One row of a text report: author name then commit and change counts.
func CountsRow(label string, commits int, changes int) string {
	return fmt.Sprintf(
		"  %-20s commits: %4d\tchanges: %6d",
		label,
		commits,
		changes,
	)
}
