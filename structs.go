package l10nlint

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Strategy selects how source file text is turned into key candidates.
type Strategy string

const (
	// StrategyHeuristic collects every string literal whose shape matches the
	// key naming convention. Catches keys referenced through helpers or
	// variables, at the price of occasional identifier-shaped noise.
	StrategyHeuristic Strategy = "heuristic"
	// StrategyCallSite collects only literals that appear inside one of the
	// recognized lookup call patterns. Precise, but blind to keys that reach
	// the lookup through a variable.
	StrategyCallSite Strategy = "callsite"
)

// ParseStrategy maps a user-supplied name to a Strategy. The empty string
// selects the default heuristic strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyHeuristic:
		return StrategyHeuristic, nil
	case StrategyCallSite:
		return StrategyCallSite, nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

type Config struct {
	CatalogPath   string          // catalog JSON file; default Languages/Localizable.xcstrings
	CatalogField  string          // top-level field holding the per-key entries; default "strings"
	SourceRoots   []string        // directories to scan; default ["."]
	SourceExt     string          // source file name suffix; default ".swift"
	ExcludeDirs   []string        // directory names skipped while walking; nil means [".git", ".build"]
	Strategy      Strategy        // extraction strategy; default StrategyHeuristic
	IgnoreKeys    []string        // key globs suppressed from missing/unused listings
	CatalogSource KeyCollector    // overrides the catalog file loader when set
	CodeSource    KeyCollector    // overrides the source tree scanner when set
	Logger        *zerolog.Logger // scan progress logging; nil disables
}

// Report is the outcome of one reconciliation run. Missing and Unused are
// sorted lexicographically and already have ignore patterns applied; the
// counts always describe the full reconciled sets.
type Report struct {
	Strategy    Strategy `json:"strategy" yaml:"strategy"`
	CatalogKeys int      `json:"catalog_keys" yaml:"catalog_keys"`
	CodeKeys    int      `json:"code_keys" yaml:"code_keys"`
	UsedKeys    int      `json:"used_keys" yaml:"used_keys"`
	Missing     []string `json:"missing" yaml:"missing"`
	Unused      []string `json:"unused" yaml:"unused"`
	Ignored     int      `json:"ignored,omitempty" yaml:"ignored,omitempty"`
}
