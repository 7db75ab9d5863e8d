package buko

import (
	"fmt"
	"strings"
)

// Violation is a single business-rule failure on an otherwise well-formed
// Record. Violations are collected exhaustively so the caller can report
// every problem at once; they are distinct from FormatError, which aborts
// parsing outright.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// Validate checks every schema field against its maximum width, SOURCE
// against its closed value set, and the cross-field invariant that at least
// one of KONTOBEZ_SOLL / KONTOBEZ_HABEN is non-blank. An empty slice means
// the record is accepted.
func Validate(r *Record) []Violation {
	var out []Violation

	ptrs := r.fieldPtrs()
	for i, spec := range Schema {
		if len(*ptrs[i]) > spec.Width {
			out = append(out, Violation{
				Field:   spec.Name,
				Message: fmt.Sprintf("exceeds maximum length of %d characters", spec.Width),
			})
		}
	}

	if r.Source != "" && !IsValidSource(r.Source) {
		out = append(out, Violation{
			Field:   "SOURCE",
			Message: "must be one of: " + strings.Join(ValidSources, ", "),
		})
	}

	if strings.TrimSpace(r.KontobezSoll) == "" && strings.TrimSpace(r.KontobezHaben) == "" {
		out = append(out, Violation{
			Field:   "KONTOBEZ_SOLL",
			Message: "either KONTOBEZ_SOLL or KONTOBEZ_HABEN must contain a value",
		})
	}

	return out
}
