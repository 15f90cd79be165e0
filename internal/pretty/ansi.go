// ANSI escape codes
package pretty

const Reset string = "\x1b[0m"
const Bold string = "\x1b[1m"
const Dim string = "\x1b[2m"

// Wraps s in the given escape code and a reset.
func Style(code string, s string) string {
	return code + s + Reset
}
