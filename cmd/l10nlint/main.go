package main

import (
	"fmt"
	"os"
)

// Exit status: 0 when the lint passes (unused keys allowed), 1 when keys are
// referenced in code but missing from the catalog, 2 for fatal errors such as
// bad flags or an unreadable catalog.
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	args := os.Args[2:]
	switch sub {
	case "check":
		cfg, err := parseCheckFlags(args)
		if err != nil {
			fatal(err)
		}
		report, err := runCheck(cfg)
		if err != nil {
			fatal(err)
		}
		os.Exit(report.ExitCode())
	case "keys":
		cfg, err := parseKeysFlags(args)
		if err != nil {
			fatal(err)
		}
		if err := runKeys(cfg); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "l10nlint: unknown subcommand %q\n", sub)
		usage()
		os.Exit(2)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "l10nlint: %v\n", err)
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, `l10nlint - consistency checker for localization catalogs and source trees

usage: l10nlint <command> [options] [roots]

commands:
  check    Reconcile catalog keys against keys referenced in source; exit 1 on missing entries.
  keys     Print one extracted key set (from source or from the catalog), one key per line.

Use 'l10nlint check -h' or 'l10nlint keys -h' for command-specific flags.
`)
}
