package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/sinclairtarget/git-log-summary/internal/config"
	"github.com/sinclairtarget/git-log-summary/internal/flagutils"
	"github.com/sinclairtarget/git-log-summary/internal/render"
	"github.com/sinclairtarget/git-log-summary/internal/summary"
)

var Commit = "unknown"
var Version = "unknown"

var progStart time.Time

type command struct {
	flagSet     *flag.FlagSet
	run         func(args []string) error
	description string
}

// Main examines the args and delegates to the specified subcommand.
//
// If no subcommand was specified, we default to the "summary" subcommand.
func main() {
	subcommands := map[string]command{ // Available subcommands
		"summary": summaryCmd(),
		"parse":   parseCmd(),
	}

	// --- Handle top-level flags ---
	mainFlagSet := flag.NewFlagSet("git-log-summary", flag.ExitOnError)

	versionFlag := mainFlagSet.Bool("version", false, "Print version and exit")
	verboseFlag := mainFlagSet.Bool("v", false, "Enables debug logging")

	mainFlagSet.Usage = func() {
		fmt.Println("Usage: git-log-summary [-v] [subcommand] [subcommand options...]")
		fmt.Println("git-log-summary summarizes git log output by date and author")

		fmt.Println()
		fmt.Println("Top-level options:")
		mainFlagSet.PrintDefaults()

		fmt.Println()
		fmt.Println("Subcommands:")

		helpSubcommands := []string{"summary", "parse"}
		for _, name := range helpSubcommands {
			cmd := subcommands[name]

			fmt.Printf("  %s\n", name)
			fmt.Printf("\t%s\n", cmd.description)
		}
	}

	// Look for the index of the first arg not intended as a top-level flag.
	// We handle this manually so that specifying the default subcommand is
	// optional even when providing subcommand flags.
	subcmdIndex := 1
loop:
	for subcmdIndex < len(os.Args) {
		switch os.Args[subcmdIndex] {
		case "-version", "--version", "-v", "--v", "-h", "--help":
			subcmdIndex += 1
		default:
			break loop
		}
	}

	mainFlagSet.Parse(os.Args[1:subcmdIndex])

	if *versionFlag {
		fmt.Printf("%s %s\n", Version, Commit)
		return
	}

	if *verboseFlag {
		configureLogging(slog.LevelDebug)
		logger().Debug("log level set to DEBUG")
	} else {
		configureLogging(slog.LevelInfo)
	}

	args := os.Args[subcmdIndex:]

	// --- Handle subcommands ---
	cmd := subcommands["summary"] // Default to "summary"
	if len(args) > 0 {
		first := args[0]
		if subcommand, ok := subcommands[first]; ok {
			cmd = subcommand
			args = args[1:]
		}
	}

	cmd.flagSet.Parse(args)
	subargs := cmd.flagSet.Args()

	progStart = time.Now()
	if err := cmd.run(subargs); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// -v- Subcommand definitions --------------------------------------------------

func summaryCmd() command {
	flagSet := flag.NewFlagSet("git-log-summary summary", flag.ExitOnError)

	ordering := flagSet.String(
		"ordering",
		defaultConfig.Ordering,
		fmt.Sprintf(
			"Sort the output, one of: %s",
			strings.Join(summary.OrderingNames(), ", "),
		),
	)
	outputFormat := flagSet.String(
		"output-format",
		defaultConfig.OutputFormat,
		fmt.Sprintf(
			"Output format, one of: %s",
			strings.Join(render.FormatNames(), ", "),
		),
	)
	color := flagSet.String(
		"color",
		defaultConfig.Color,
		"Style text output, one of: auto, always, never",
	)
	configPath := flagSet.String("config", "", strings.TrimSpace(`
YAML file with default options. Defaults to $`+config.EnvVar+` or
`+config.DefaultFileName+` in the working directory
	`))

	var excluded flagutils.SliceFlag
	excludeUsage := strings.TrimSpace(`
Exclude commits by this author name or email. Can be specified multiple times
	`)
	flagSet.Var(&excluded, "x", excludeUsage)
	flagSet.Var(&excluded, "exclude", excludeUsage)

	inputFlags := addInputFlags(flagSet)

	description := "Print commit and change counts per author for each date"

	flagSet.Usage = func() {
		fmt.Println(strings.TrimSpace(`
Usage: git log --shortstat --date=short | git-log-summary [summary] [options...]
		`))
		fmt.Println(description)
		fmt.Println()
		flagSet.PrintDefaults()
	}

	return command{
		flagSet:     flagSet,
		description: description,
		run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %v", args)
			}

			// Only flags given on the command line override the config file
			var fromFlags config.Config
			flagSet.Visit(func(f *flag.Flag) {
				switch f.Name {
				case "ordering":
					fromFlags.Ordering = *ordering
				case "output-format":
					fromFlags.OutputFormat = *outputFormat
				case "color":
					fromFlags.Color = *color
				}
			})
			fromFlags.Exclude = excluded

			fromFile, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			opts, err := resolveSummaryOpts(
				defaultConfig.Override(fromFile).Override(fromFlags),
			)
			if err != nil {
				return err
			}

			r, closer, err := inputFlags.open()
			if err != nil {
				return err
			}
			defer closer()

			return summarize(r, os.Stdout, opts, useColor(opts.color, os.Stdout))
		},
	}
}

func parseCmd() command {
	flagSet := flag.NewFlagSet("git-log-summary parse", flag.ExitOnError)

	inputFlags := addInputFlags(flagSet)

	description := "Print the commits parsed from git log output"

	flagSet.Usage = func() {
		fmt.Println(strings.TrimSpace(`
Usage: git log --shortstat --date=short | git-log-summary parse [options...]
		`))
		fmt.Println(description)
		fmt.Println()
		flagSet.PrintDefaults()
	}

	return command{
		flagSet:     flagSet,
		description: description,
		run: func(args []string) error {
			r, closer, err := inputFlags.open()
			if err != nil {
				return err
			}
			defer closer()

			return parse(r, os.Stdout)
		},
	}
}

// -^---------------------------------------------------------------------------

func configureLogging(level slog.Level) {
	handler := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

type inputFlags struct {
	path *string
}

func addInputFlags(set *flag.FlagSet) *inputFlags {
	return &inputFlags{
		path: set.String("i", "", "Read git log output from this file instead of stdin"),
	}
}

// Returns the file named by -i, or stdin.
func (flags *inputFlags) open() (*os.File, func() error, error) {
	if *flags.path == "" {
		return os.Stdin, func() error { return nil }, nil
	}

	f, err := os.Open(*flags.path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open input: %w", err)
	}

	return f, f.Close, nil
}
