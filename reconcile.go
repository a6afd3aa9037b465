package l10nlint

// Reconcile computes the differences between the keys a catalog defines and
// the keys a source tree references. It is pure set arithmetic: no I/O, and
// the same inputs always produce the same report.
func Reconcile(catalogKeys, codeKeys KeySet) *Report {
	return &Report{
		CatalogKeys: len(catalogKeys),
		CodeKeys:    len(codeKeys),
		UsedKeys:    len(codeKeys.Intersect(catalogKeys)),
		Missing:     codeKeys.Diff(catalogKeys).Sorted(),
		Unused:      catalogKeys.Diff(codeKeys).Sorted(),
	}
}
