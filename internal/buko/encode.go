package buko

import "strings"

// EncodeLine renders a classification triple and a validated record into a
// single 97-character BUKO line: three 20-character classification columns
// followed by the 14 schema fields at their fixed offsets. Every field is
// left-justified and space-padded to its column width; adjacency is purely
// positional, no separators. Values longer than their width pass through
// verbatim; callers are expected to run Validate first.
func EncodeLine(c Classification, r *Record) string {
	var b strings.Builder
	b.Grow(LineLength)

	pad(&b, c.BEType, classWidth)
	pad(&b, c.BEC1, classWidth)
	pad(&b, c.BEC2, classWidth)

	ptrs := r.fieldPtrs()
	for i, spec := range Schema {
		pad(&b, *ptrs[i], spec.Width)
	}
	return b.String()
}

func pad(b *strings.Builder, v string, width int) {
	b.WriteString(v)
	for n := len(v); n < width; n++ {
		b.WriteByte(' ')
	}
}
