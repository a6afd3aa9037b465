package l10nlint

import (
	"fmt"
	"time"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=$GOFILE -package mock_l10nlint -destination=test/mock/$GOFILE

const (
	DefaultCatalogPath  = "Languages/Localizable.xcstrings"
	DefaultCatalogField = "strings"
	DefaultSourceExt    = ".swift"
)

// KeyCollector produces one side of the reconciliation: the keys a catalog
// defines, or the keys a source tree references.
type KeyCollector interface {
	CollectKeys() (KeySet, error)
}

// Linter checks a localization catalog against the source tree that uses it.
type Linter interface {
	// Check collects both key sets, reconciles them and applies the ignore
	// patterns. The run fails (non-nil error) only on broken inputs; lint
	// findings are reported, not returned as errors.
	Check() (*Report, error)
	// CatalogKeys returns only the keys the catalog defines.
	CatalogKeys() (KeySet, error)
	// CodeKeys returns only the keys the source tree references.
	CodeKeys() (KeySet, error)
}

type DefaultLinter struct {
	cfg     Config
	catalog KeyCollector
	code    KeyCollector
	ignore  []glob.Glob
	log     zerolog.Logger
}

func NewLinter(cfg Config) (Linter, error) {
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = DefaultCatalogPath
	}
	if cfg.CatalogField == "" {
		cfg.CatalogField = DefaultCatalogField
	}
	if len(cfg.SourceRoots) == 0 {
		cfg.SourceRoots = []string{"."}
	}
	if cfg.SourceExt == "" {
		cfg.SourceExt = DefaultSourceExt
	}
	if cfg.ExcludeDirs == nil {
		cfg.ExcludeDirs = []string{".git", ".build"}
	}
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyHeuristic
	}
	if cfg.Strategy != StrategyHeuristic && cfg.Strategy != StrategyCallSite {
		return nil, fmt.Errorf("unknown strategy %q", cfg.Strategy)
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	ignore := make([]glob.Glob, 0, len(cfg.IgnoreKeys))
	for _, pattern := range cfg.IgnoreKeys {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		ignore = append(ignore, g)
	}

	dl := DefaultLinter{cfg: cfg, ignore: ignore, log: logger}
	dl.catalog = cfg.CatalogSource
	if dl.catalog == nil {
		dl.catalog = &catalogFile{path: cfg.CatalogPath, field: cfg.CatalogField}
	}
	dl.code = cfg.CodeSource
	if dl.code == nil {
		dl.code = &sourceTree{
			roots:    cfg.SourceRoots,
			ext:      cfg.SourceExt,
			exclude:  cfg.ExcludeDirs,
			strategy: cfg.Strategy,
			log:      logger,
		}
	}

	return &dl, nil
}

func (dl *DefaultLinter) CatalogKeys() (KeySet, error) {
	return dl.catalog.CollectKeys()
}

func (dl *DefaultLinter) CodeKeys() (KeySet, error) {
	return dl.code.CollectKeys()
}

func (dl *DefaultLinter) Check() (*Report, error) {
	started := time.Now()
	catalogKeys, err := dl.catalog.CollectKeys()
	if err != nil {
		return nil, err
	}
	codeKeys, err := dl.code.CollectKeys()
	if err != nil {
		return nil, err
	}

	report := Reconcile(catalogKeys, codeKeys)
	report.Strategy = dl.cfg.Strategy
	dl.suppressIgnored(report)

	dl.log.Debug().
		Int("catalog_keys", report.CatalogKeys).
		Int("code_keys", report.CodeKeys).
		Int("missing", len(report.Missing)).
		Int("unused", len(report.Unused)).
		Int("ignored", report.Ignored).
		Dur("elapsed", time.Since(started)).
		Msg("lint finished")
	return report, nil
}

// suppressIgnored drops findings matched by an ignore pattern from the
// listings. The set counts stay as reconciled; only the reported listings
// shrink, and the exit status derives from what is left.
func (dl *DefaultLinter) suppressIgnored(report *Report) {
	if len(dl.ignore) == 0 {
		return
	}
	report.Missing = dl.keepUnmatched(report.Missing, report)
	report.Unused = dl.keepUnmatched(report.Unused, report)
}

func (dl *DefaultLinter) keepUnmatched(keys []string, report *Report) []string {
	kept := make([]string, 0, len(keys))
	for _, key := range keys {
		if dl.matchesIgnore(key) {
			report.Ignored++
			continue
		}
		kept = append(kept, key)
	}
	return kept
}

func (dl *DefaultLinter) matchesIgnore(key string) bool {
	for _, g := range dl.ignore {
		if g.Match(key) {
			return true
		}
	}
	return false
}
