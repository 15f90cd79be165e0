// Helpers for the flag package.
package flagutils

import "strings"

// A string flag that can be given more than once.
type SliceFlag []string

func (s *SliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *SliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}
