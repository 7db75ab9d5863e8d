package buko

import "strings"

// ComparisonKey computes the canonical duplicate-detection key for a record:
// the 14 schema fields padded to their column widths, concatenated in wire
// order, with the whole string trimmed. The classification columns are
// excluded: two records with identical schema fields but different
// classifications are still duplicates.
func ComparisonKey(r *Record) string {
	var b strings.Builder
	b.Grow(LineLength - recordOffset)

	ptrs := r.fieldPtrs()
	for i, spec := range Schema {
		pad(&b, *ptrs[i], spec.Width)
	}
	return strings.TrimSpace(b.String())
}

// FindDuplicates compares a candidate record against every existing line and
// returns the 1-based positions of matches, in order of appearance. Lines
// too short to hold a record are skipped. A non-empty result is advisory:
// the caller may warn and still permit insertion.
func FindDuplicates(r *Record, lines []string) []int {
	key := ComparisonKey(r)

	var hits []int
	for i, line := range lines {
		_, existing, ok := DecodeLine(line)
		if !ok {
			continue
		}
		if ComparisonKey(&existing) == key {
			hits = append(hits, i+1)
		}
	}
	return hits
}
