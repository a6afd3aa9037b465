package l10nlint

import "sort"

// KeySet is a deduplicated set of localization key texts.
type KeySet map[string]struct{}

// NewKeySet builds a KeySet from the given keys.
func NewKeySet(keys ...string) KeySet {
	ks := make(KeySet, len(keys))
	for _, key := range keys {
		ks.Add(key)
	}
	return ks
}

func (ks KeySet) Add(key string) {
	ks[key] = struct{}{}
}

func (ks KeySet) Has(key string) bool {
	_, found := ks[key]
	return found
}

// Sorted returns the keys in lexicographic order, independent of the order
// they were discovered in.
func (ks KeySet) Sorted() []string {
	out := make([]string, 0, len(ks))
	for key := range ks {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Diff returns the keys present in ks but not in other.
func (ks KeySet) Diff(other KeySet) KeySet {
	out := KeySet{}
	for key := range ks {
		if !other.Has(key) {
			out.Add(key)
		}
	}
	return out
}

// Intersect returns the keys present in both ks and other.
func (ks KeySet) Intersect(other KeySet) KeySet {
	out := KeySet{}
	for key := range ks {
		if other.Has(key) {
			out.Add(key)
		}
	}
	return out
}
