// Package litscan implements text-level key candidate extraction: comment
// stripping, double-quoted string literal scanning, the key shape filter, and
// the call-site patterns. It works on raw file text without lexing the host
// language, so each function documents the inaccuracies it accepts.
package litscan

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shape filter length bounds, in runes.
const (
	minKeyRunes = 5
	maxKeyRunes = 80
)

var (
	// Call patterns recognized by the call-site strategy: a catalog lookup
	// keyed by the first string argument, and a view constructor taking the
	// key as a labeled l10n argument.
	lookupCallRegex = regexp.MustCompile(`L10n\.(?:string|key)\("([^"]+)"`)
	textCallRegex   = regexp.MustCompile(`Text\s*\(\s*l10n:\s*"([^"]+)"`)
)

// StripComments removes block comments first, then line comments. The order
// matters: a line comment marker inside a block comment must not stop the
// block removal early. Block comments do not nest, and an unterminated block
// comment swallows the rest of the input. Comment markers inside string
// literals are not recognized, so a literal containing "//" loses the rest of
// its line; the shape filter tolerates the resulting under-match.
func StripComments(src string) string {
	return stripLineComments(stripBlockComments(src))
}

func stripBlockComments(src string) string {
	var b strings.Builder
	for {
		open := strings.Index(src, "/*")
		if open < 0 {
			b.WriteString(src)
			return b.String()
		}
		b.WriteString(src[:open])
		end := strings.Index(src[open+2:], "*/")
		if end < 0 {
			return b.String()
		}
		src = src[open+2+end+2:]
	}
}

func stripLineComments(src string) string {
	var b strings.Builder
	for {
		marker := strings.Index(src, "//")
		if marker < 0 {
			b.WriteString(src)
			return b.String()
		}
		b.WriteString(src[:marker])
		nl := strings.IndexByte(src[marker:], '\n')
		if nl < 0 {
			return b.String()
		}
		// Keep the newline so line counting and literal scanning stay sane.
		src = src[marker+nl:]
	}
}

// StringLiterals returns the raw inner text of every double-quoted literal in
// src, in order of appearance, duplicates included. A backslash escapes the
// following character, so an escaped quote does not terminate the literal;
// escape sequences are kept verbatim, not decoded. A literal with no closing
// quote is dropped.
func StringLiterals(src string) []string {
	var literals []string
	for i := 0; i < len(src); i++ {
		if src[i] != '"' {
			continue
		}
		inner, end, ok := scanLiteral(src, i)
		if !ok {
			// No closing quote anywhere after i, nothing further can match.
			break
		}
		literals = append(literals, inner)
		i = end
	}
	return literals
}

// scanLiteral scans the literal whose opening quote sits at src[start] and
// returns its raw inner text along with the index of the closing quote.
func scanLiteral(src string, start int) (inner string, end int, ok bool) {
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '"':
			return src[start+1 : i], i, true
		}
	}
	return "", 0, false
}

// IsKeyShaped reports whether lit follows the key naming convention: at least
// one underscore, nothing but lowercase letters with digits and underscores,
// 5 to 80 runes, no whitespace. It is a heuristic, not a classification:
// identifiers that share the shape are over-matched, keys that break the
// convention are under-matched.
func IsKeyShaped(lit string) bool {
	if !strings.ContainsRune(lit, '_') {
		return false
	}
	letters := strings.Map(func(r rune) rune {
		if r == '_' || (r >= '0' && r <= '9') {
			return -1
		}
		return r
	}, lit)
	if letters == "" {
		return false
	}
	for _, r := range letters {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	if lit != strings.ToLower(lit) {
		return false
	}
	if n := utf8.RuneCountInString(lit); n < minKeyRunes || n > maxKeyRunes {
		return false
	}
	for _, r := range lit {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// CallSiteKeys returns the key arguments captured by the recognized call
// patterns, lookup calls first, in order of appearance, duplicates included.
func CallSiteKeys(src string) []string {
	var keys []string
	for _, re := range []*regexp.Regexp{lookupCallRegex, textCallRegex} {
		for _, match := range re.FindAllStringSubmatch(src, -1) {
			keys = append(keys, match[1])
		}
	}
	return keys
}
