package l10nlint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/loopcontext/l10nlint/internal/litscan"
	"github.com/rs/zerolog"
)

// sourceTree collects the keys referenced by every source file under the
// configured roots whose name ends with the configured extension.
type sourceTree struct {
	roots    []string
	ext      string
	exclude  []string
	strategy Strategy
	log      zerolog.Logger
}

func (s *sourceTree) CollectKeys() (KeySet, error) {
	excludeSet := make(map[string]struct{}, len(s.exclude))
	for _, d := range s.exclude {
		excludeSet[d] = struct{}{}
	}
	keys := KeySet{}
	for _, root := range s.roots {
		root = filepath.Clean(root)
		if _, err := os.Stat(root); err != nil {
			if os.IsNotExist(err) {
				return nil, &NotFoundError{Path: root, Err: err}
			}
			return nil, fmt.Errorf("stat source root %s: %w", root, err)
		}
		if err := s.walkRoot(root, excludeSet, keys); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func (s *sourceTree) walkRoot(root string, excludeSet map[string]struct{}, keys KeySet) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if _, skip := excludeSet[info.Name()]; skip {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(info.Name(), s.ext) {
			return nil
		}
		return s.scanFile(path, keys)
	})
}

func (s *sourceTree) scanFile(path string, keys KeySet) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(raw) {
		return fmt.Errorf("read %s: not valid UTF-8", path)
	}
	stripped := litscan.StripComments(string(raw))
	found := 0
	switch s.strategy {
	case StrategyCallSite:
		for _, key := range litscan.CallSiteKeys(stripped) {
			keys.Add(key)
			found++
		}
	default:
		for _, lit := range litscan.StringLiterals(stripped) {
			if litscan.IsKeyShaped(lit) {
				keys.Add(lit)
				found++
			}
		}
	}
	s.log.Debug().Str("file", path).Int("candidates", found).Msg("scanned source file")
	return nil
}
