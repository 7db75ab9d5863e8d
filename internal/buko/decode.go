package buko

import "strings"

// Configuration is one usable row decoded from a persisted BUKO file.
type Configuration struct {
	Line           int // 1-based position in the file
	Classification Classification
	Record         Record
	Raw            string
}

// DecodeLine slices a persisted line at the fixed column offsets and
// reconstructs the classification triple and record. A line whose trimmed
// length is 60 characters or less does not hold a record; ok is false and
// no error is ever raised, since historical files contain blank and short rows.
// Fields beyond the line's actual length default to a single space (1-char
// columns) or the empty string (wider columns). Multi-character fields are
// trimmed; 1-character fields are kept raw.
func DecodeLine(line string) (Classification, Record, bool) {
	if len(strings.TrimSpace(line)) <= recordOffset {
		return Classification{}, Record{}, false
	}

	c := Classification{
		BEType: strings.TrimSpace(columnAt(line, 0, classWidth)),
		BEC1:   strings.TrimSpace(columnAt(line, classWidth, 2*classWidth)),
		BEC2:   strings.TrimSpace(columnAt(line, 2*classWidth, recordOffset)),
	}

	var r Record
	ptrs := r.fieldPtrs()
	off := recordOffset
	for i, spec := range Schema {
		v := columnAt(line, off, off+spec.Width)
		if spec.Width == 1 {
			if v == "" {
				v = " "
			}
		} else {
			v = strings.TrimSpace(v)
		}
		*ptrs[i] = v
		off += spec.Width
	}
	return c, r, true
}

// LoadConfigurations decodes every usable configuration from a BUKO file's
// lines. Rows that are too short, or whose classification columns are not
// all present, are silently skipped; positions of kept rows refer to the
// original line numbering.
func LoadConfigurations(lines []string) []Configuration {
	var out []Configuration
	for i, line := range lines {
		c, r, ok := DecodeLine(line)
		if !ok {
			continue
		}
		if c.BEType == "" || c.BEC1 == "" || c.BEC2 == "" {
			continue
		}
		out = append(out, Configuration{
			Line:           i + 1,
			Classification: c,
			Record:         r,
			Raw:            line,
		})
	}
	return out
}

// columnAt returns line[from:to], tolerating lines shorter than the current
// layout.
func columnAt(line string, from, to int) string {
	if len(line) <= from {
		return ""
	}
	if len(line) < to {
		to = len(line)
	}
	return line[from:to]
}
