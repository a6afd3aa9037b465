package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/loopcontext/l10nlint"
	"github.com/rs/zerolog"
)

// checkConfig holds flags for the check command.
type checkConfig struct {
	roots    []string
	catalog  string
	field    string
	ext      string
	exclude  string
	strategy string
	ignore   string
	format   string
	out      string
	noColor  bool
	verbose  bool
}

func usageCheck(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `usage: l10nlint check [options] [roots]

Check loads the catalog key set, extracts the keys referenced by source files
under the given roots (default: current directory), and reports the
differences. Keys referenced in code but missing from the catalog fail the run
with exit status 1; unused catalog keys only produce a warning.

Flags:
`)
	fs.PrintDefaults()
}

func parseCheckFlags(args []string) (*checkConfig, error) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var cfg checkConfig
	fs.StringVar(&cfg.catalog, "catalog", l10nlint.DefaultCatalogPath, "Catalog JSON file to lint against.")
	fs.StringVar(&cfg.field, "field", l10nlint.DefaultCatalogField, "Top-level catalog field holding the per-key entries.")
	fs.StringVar(&cfg.ext, "ext", l10nlint.DefaultSourceExt, "Source file name suffix to scan.")
	fs.StringVar(&cfg.exclude, "exclude", ".git,.build", "Comma-separated dir names to skip (e.g. .build).")
	fs.StringVar(&cfg.strategy, "strategy", "heuristic", "Extraction strategy: 'heuristic' (any key-shaped literal) or 'callsite' (recognized lookup calls only).")
	fs.StringVar(&cfg.ignore, "ignore", "", "Comma-separated key globs suppressed from the report (e.g. 'debug_*,*_legacy').")
	fs.StringVar(&cfg.format, "format", "text", "Report format: 'text', 'json' or 'yaml'.")
	fs.StringVar(&cfg.out, "out", "", "Write the report to a file instead of stdout.")
	fs.BoolVar(&cfg.noColor, "no-color", false, "Disable colored markers in the text report.")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Log scan progress to stderr.")
	fs.Usage = func() { usageCheck(fs) }
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.roots = fs.Args()
	if len(cfg.roots) == 0 {
		cfg.roots = []string{"."}
	}
	return &cfg, nil
}

func runCheck(cfg *checkConfig) (*l10nlint.Report, error) {
	if cfg.noColor {
		color.NoColor = true
	}
	strategy, err := l10nlint.ParseStrategy(cfg.strategy)
	if err != nil {
		return nil, err
	}
	format, err := l10nlint.ParseFormat(cfg.format)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg.verbose)
	lint, err := l10nlint.NewLinter(l10nlint.Config{
		CatalogPath:  cfg.catalog,
		CatalogField: cfg.field,
		SourceRoots:  cfg.roots,
		SourceExt:    cfg.ext,
		ExcludeDirs:  splitList(cfg.exclude),
		Strategy:     strategy,
		IgnoreKeys:   splitList(cfg.ignore),
		Logger:       &logger,
	})
	if err != nil {
		return nil, err
	}
	report, err := lint.Check()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, format); err != nil {
		return nil, err
	}
	if cfg.out != "" {
		if err := os.WriteFile(cfg.out, buf.Bytes(), 0644); err != nil {
			return nil, err
		}
		return report, nil
	}
	fmt.Print(buf.String())
	return report, nil
}

// splitList parses a comma-separated flag value. An empty value yields an
// empty non-nil slice, so '-exclude ""' really disables the default excludes.
func splitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}
