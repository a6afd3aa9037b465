package l10nlint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v2"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name to a Format. The empty string selects
// the default text format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

var (
	passMarker = color.New(color.FgGreen, color.Bold)
	failMarker = color.New(color.FgRed, color.Bold)
	warnMarker = color.New(color.FgYellow, color.Bold)
	noteMarker = color.New(color.FgCyan)
)

// Clean reports whether the catalog and the source tree agree completely.
func (r *Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.Unused) == 0
}

// Failed reports whether keys are referenced in code but absent from the
// catalog. Unused catalog keys alone never fail a run.
func (r *Report) Failed() bool {
	return len(r.Missing) > 0
}

// ExitCode is the process status a CLI run should end with: 1 for a lint
// failure, 0 otherwise.
func (r *Report) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// Render writes the report to w in the given format.
func (r *Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return r.renderText(w)
	}
}

func (r *Report) renderText(w io.Writer) error {
	// Rendered into a buffer first so the sink sees a single checked write
	// instead of a half-printed report when it fails mid-way.
	var buf bytes.Buffer
	if r.Strategy != StrategyCallSite {
		// Call-site extraction misses indirect references, so its counts
		// would understate real usage. Only the heuristic run reports them.
		// Unused is counted from the full reconciled sets, not the listing,
		// which ignore patterns may have shrunk.
		fmt.Fprintf(&buf, "%s catalog keys: %d, used: %d, unused: %d\n",
			noteMarker.Sprint("NOTE"), r.CatalogKeys, r.UsedKeys, r.CatalogKeys-r.UsedKeys)
	}
	if r.Ignored > 0 {
		fmt.Fprintf(&buf, "%s findings suppressed by ignore patterns: %d\n",
			noteMarker.Sprint("NOTE"), r.Ignored)
	}
	if r.Clean() {
		fmt.Fprintf(&buf, "%s localization lint passed, all keys are in sync\n",
			passMarker.Sprint("OK"))
	}
	if len(r.Missing) > 0 {
		fmt.Fprintf(&buf, "%s missing catalog entries (%d):\n",
			failMarker.Sprint("FAIL"), len(r.Missing))
		for _, key := range r.Missing {
			fmt.Fprintf(&buf, "  - %s\n", key)
		}
	}
	if len(r.Unused) > 0 {
		fmt.Fprintf(&buf, "%s unused catalog keys (%d):\n",
			warnMarker.Sprint("WARN"), len(r.Unused))
		for _, key := range r.Unused {
			fmt.Fprintf(&buf, "  - %s\n", key)
		}
		fmt.Fprintf(&buf, "%s unused keys may be referenced indirectly, check before removing\n",
			noteMarker.Sprint("NOTE"))
	}
	_, err := w.Write(buf.Bytes())
	return err
}
