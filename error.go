package l10nlint

import (
	"errors"
	"fmt"
)

// NotFoundError reports a catalog file or source root that does not exist.
// It is fatal: without both inputs the reconciliation has no meaning, so the
// linter never degrades it to an empty key set.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError reports a catalog file whose content is not the expected JSON
// shape: invalid JSON, a non-object top level, or a non-object entries field.
type ParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("parse catalog %s", e.Path)
	}
	return fmt.Sprintf("parse catalog %s: %s", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsParse reports whether err is or wraps a ParseError.
func IsParse(err error) bool {
	var parse *ParseError
	return errors.As(err, &parse)
}
