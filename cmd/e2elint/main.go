// Command e2elint checks end-to-end test sources for UI driver calls that
// bypass the action helper.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/rusq/e2ekit/internal/config"
	"github.com/rusq/e2ekit/internal/report"
	"github.com/rusq/e2ekit/lint"
)

var _ = godotenv.Load()

const (
	exitOK = iota
	exitProblems
	exitError
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("e2elint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", config.DefaultFile, "path to YAML config `file`")
	format := fs.String("format", "", "output format: text or json")
	exclude := fs.String("exclude", "", "comma separated `list` of files to skip")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: e2elint [flags] path...\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitError
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "e2elint:", err)
		return exitError
	}
	lg := config.InitLogger(stderr, cfg.Logging.Format, cfg.Logging.Level)

	// precedence: flags > env > config > defaults
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *exclude != "" {
		cfg.Lint.Exclude = config.SplitList(*exclude)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "e2elint:", err)
		return exitError
	}

	l := lint.New(
		[]lint.Rule{lint.NewE2EAction(lint.NewExclusionList(cfg.Lint.Exclude...))},
		lint.WithDisabled(cfg.Lint.DisabledRules...),
		lint.WithLogger(lg),
	)
	lg.Debug("linting", "paths", fs.Args(), "exclude", cfg.Lint.Exclude)
	ds, lintErr := l.LintPaths(fs.Args())
	if err := report.Write(stdout, cfg.Output.Format, ds); err != nil {
		fmt.Fprintln(stderr, "e2elint:", err)
		return exitError
	}
	if lintErr != nil {
		slog.Error("lint failed", "err", lintErr)
		return exitError
	}
	if len(ds) > 0 {
		return exitProblems
	}
	return exitOK
}
