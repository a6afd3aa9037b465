package l10nlint

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// catalogFile collects the key set of a string catalog: a JSON document whose
// top-level entries field maps key text to translation entries. Only the key
// names are consumed; entry contents stay opaque, so catalog format revisions
// that keep the outer mapping do not break the linter.
type catalogFile struct {
	path  string
	field string
}

func (c *catalogFile) CollectKeys() (KeySet, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: c.path, Err: err}
		}
		return nil, fmt.Errorf("read catalog %s: %w", c.path, err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, &ParseError{Path: c.path, Reason: "not valid JSON"}
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, &ParseError{Path: c.path, Reason: "top level is not an object"}
	}
	// The field is a literal member name. Get would evaluate it as a path
	// expression, so a field like "app.strings" or "*" would match the
	// wrong member.
	var entries gjson.Result
	doc.ForEach(func(key, value gjson.Result) bool {
		if key.String() == c.field {
			entries = value
			return false
		}
		return true
	})
	keys := KeySet{}
	if !entries.Exists() {
		// A catalog without the entries field defines no keys. Every key
		// referenced in code will be reported missing, which is the honest
		// answer for an empty catalog.
		return keys, nil
	}
	if !entries.IsObject() {
		return nil, &ParseError{Path: c.path, Reason: fmt.Sprintf("field %q is not an object", c.field)}
	}
	entries.ForEach(func(key, _ gjson.Result) bool {
		keys.Add(key.String())
		return true
	})
	return keys, nil
}
