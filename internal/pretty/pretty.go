package pretty

import (
	"os"

	"golang.org/x/term"
)

// Whether f is a terminal we can write escape codes to.
func AllowDynamic(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
