package test

import (
	"os"
	"path/filepath"
)

// Fixture is an on-disk project layout for linter tests: relative file path
// to file content, materialized under Root.
type Fixture struct {
	Root  string
	Files map[string]string
}

func (f *Fixture) Write() error {
	for name, content := range f.Files {
		path := filepath.Join(f.Root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return err
		}
	}
	return nil
}

// Path resolves a fixture-relative file name against the root.
func (f *Fixture) Path(name string) string {
	return filepath.Join(f.Root, name)
}

// Remove deletes the fixture tree. Safe to call when Root was never written.
func (f *Fixture) Remove() error {
	if f.Root == "" {
		return nil
	}
	return os.RemoveAll(f.Root)
}
