package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sinclairtarget/git-log-summary/internal/config"
	"github.com/sinclairtarget/git-log-summary/internal/gitlog"
	"github.com/sinclairtarget/git-log-summary/internal/pretty"
	"github.com/sinclairtarget/git-log-summary/internal/render"
	"github.com/sinclairtarget/git-log-summary/internal/summary"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var defaultConfig = config.Config{
	Ordering:     summary.Chronological.String(),
	OutputFormat: render.Text.String(),
	Color:        colorAuto,
}

type summaryOpts struct {
	ordering summary.Ordering
	format   render.Format
	exclude  []string
	color    string
}

func loadConfig(explicitPath string) (config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}

	path, err := config.Detect(explicitPath, wd)
	if err != nil {
		return config.Config{}, err
	}

	if path == "" {
		return config.Config{}, nil
	}

	return config.LoadFile(path)
}

// Checks every option before any input is read.
func resolveSummaryOpts(c config.Config) (summaryOpts, error) {
	ordering, err := summary.ParseOrdering(c.Ordering)
	if err != nil {
		return summaryOpts{}, err
	}

	format, err := render.ParseFormat(c.OutputFormat)
	if err != nil {
		return summaryOpts{}, err
	}

	switch c.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return summaryOpts{}, fmt.Errorf("unknown color mode: \"%s\"", c.Color)
	}

	return summaryOpts{
		ordering: ordering,
		format:   format,
		exclude:  c.Exclude,
		color:    c.Color,
	}, nil
}

func useColor(mode string, out *os.File) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		_, noColor := os.LookupEnv("NO_COLOR")
		return !noColor && pretty.AllowDynamic(out)
	}
}

// The "summary" subcommand groups the commits read from r by date and author
// and writes a report to w.
func summarize(
	r io.Reader,
	w io.Writer,
	opts summaryOpts,
	color bool,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"summary\": %w", err)
		}
	}()

	logger().Debug(
		"called summarize()",
		"ordering",
		opts.ordering,
		"format",
		opts.format,
		"exclude",
		opts.exclude,
		"color",
		color,
	)

	lines, finish := gitlog.Lines(r)
	groups, err := summary.Aggregate(
		gitlog.ParseCommits(lines),
		summary.Opts{Exclude: opts.exclude},
	)
	if err != nil {
		return err
	}

	err = finish()
	if err != nil {
		return err
	}

	groups = summary.Sort(groups, opts.ordering)

	out, err := render.Render(groups, opts.format, render.Opts{Color: color})
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	if err != nil {
		return fmt.Errorf("error writing summary: %w", err)
	}

	elapsed := time.Now().Sub(progStart)
	logger().Debug("finished summary", "duration_ms", elapsed.Milliseconds())

	return nil
}
