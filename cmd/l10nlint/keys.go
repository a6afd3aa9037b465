package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/loopcontext/l10nlint"
)

// keysConfig holds flags for the keys command.
type keysConfig struct {
	roots    []string
	from     string
	catalog  string
	field    string
	ext      string
	exclude  string
	strategy string
	out      string
}

func usageKeys(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `usage: l10nlint keys [options] [roots]

Keys prints a single extracted key set without reconciling anything, one key
per line in lexicographic order. With -from code (the default) it scans the
source roots; with -from catalog it loads the catalog file.

Flags:
`)
	fs.PrintDefaults()
}

func parseKeysFlags(args []string) (*keysConfig, error) {
	fs := flag.NewFlagSet("keys", flag.ExitOnError)
	var cfg keysConfig
	fs.StringVar(&cfg.from, "from", "code", "Key set to print: 'code' (scan source) or 'catalog' (load catalog).")
	fs.StringVar(&cfg.catalog, "catalog", l10nlint.DefaultCatalogPath, "Catalog JSON file (used with -from catalog).")
	fs.StringVar(&cfg.field, "field", l10nlint.DefaultCatalogField, "Top-level catalog field holding the per-key entries.")
	fs.StringVar(&cfg.ext, "ext", l10nlint.DefaultSourceExt, "Source file name suffix to scan.")
	fs.StringVar(&cfg.exclude, "exclude", ".git,.build", "Comma-separated dir names to skip (e.g. .build).")
	fs.StringVar(&cfg.strategy, "strategy", "heuristic", "Extraction strategy: 'heuristic' or 'callsite'.")
	fs.StringVar(&cfg.out, "out", "", "Output file (one key per line). Default stdout.")
	fs.Usage = func() { usageKeys(fs) }
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.roots = fs.Args()
	if len(cfg.roots) == 0 {
		cfg.roots = []string{"."}
	}
	return &cfg, nil
}

func runKeys(cfg *keysConfig) error {
	strategy, err := l10nlint.ParseStrategy(cfg.strategy)
	if err != nil {
		return err
	}
	lint, err := l10nlint.NewLinter(l10nlint.Config{
		CatalogPath:  cfg.catalog,
		CatalogField: cfg.field,
		SourceRoots:  cfg.roots,
		SourceExt:    cfg.ext,
		ExcludeDirs:  splitList(cfg.exclude),
		Strategy:     strategy,
	})
	if err != nil {
		return err
	}

	var keys l10nlint.KeySet
	switch cfg.from {
	case "code":
		keys, err = lint.CodeKeys()
	case "catalog":
		keys, err = lint.CatalogKeys()
	default:
		return fmt.Errorf("unknown -from value %q, want 'code' or 'catalog'", cfg.from)
	}
	if err != nil {
		return err
	}

	// Keys-only output (one per line)
	out := strings.Join(keys.Sorted(), "\n")
	if out != "" {
		out += "\n"
	}
	if cfg.out != "" {
		return os.WriteFile(cfg.out, []byte(out), 0644)
	}
	fmt.Print(out)
	return nil
}
