// Turns a summary into a text report or CSV table.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/sinclairtarget/git-log-summary/internal/summary"
)

type Format int

const (
	Text Format = iota
	CSV
)

var formatNames = map[Format]string{
	Text: "text",
	CSV:  "csv",
}

// Names accepted by ParseFormat, default first.
func FormatNames() []string {
	return []string{formatNames[Text], formatNames[CSV]}
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

type InvalidOutputFormatError struct {
	Name string
}

func (err *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("unknown output format: \"%s\"", err.Name)
}

func ParseFormat(name string) (Format, error) {
	for f, s := range formatNames {
		if s == name {
			return f, nil
		}
	}

	return Text, &InvalidOutputFormatError{Name: name}
}

type Opts struct {
	Color bool // Style text output with ANSI escape codes
}

// Labels used for the aggregate rows and columns.
const (
	TotalLabel   = "Total"
	AverageLabel = "Average"
)

func Write(
	w io.Writer,
	groups []summary.DateGroup,
	format Format,
	opts Opts,
) error {
	switch format {
	case Text:
		return WriteText(w, groups, opts)
	case CSV:
		return WriteCSV(w, groups)
	default:
		return &InvalidOutputFormatError{Name: format.String()}
	}
}

// Renders the whole summary to a string.
func Render(groups []summary.DateGroup, format Format, opts Opts) (string, error) {
	var b strings.Builder
	if err := Write(&b, groups, format, opts); err != nil {
		return "", err
	}

	return b.String(), nil
}
