package buko

import (
	"fmt"
	"strings"
)

// MinFields is the minimum number of slash-separated tokens a diagnostic
// code must carry. The 14th token, SOURCE, is optional.
const MinFields = 13

// FormatError reports a malformed diagnostic code: an empty input, or fewer
// than MinFields tokens. It is a hard failure; nothing downstream runs.
type FormatError struct {
	Found    int
	Required int
}

func (e *FormatError) Error() string {
	if e.Found == 0 {
		return "diagnostic code is empty"
	}
	return fmt.Sprintf("invalid diagnostic code: found %d fields, need at least %d", e.Found, e.Required)
}

// Parse splits a slash-delimited diagnostic code into a Record. Tokens map
// positionally onto the schema fields; each token is trimmed and, when blank,
// replaced by the field's fill value. Length and value-set checks are
// Validate's job, not Parse's.
func Parse(code string) (*Record, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, &FormatError{Found: 0, Required: MinFields}
	}

	parts := strings.Split(code, "/")
	if len(parts) < MinFields {
		return nil, &FormatError{Found: len(parts), Required: MinFields}
	}

	var r Record
	ptrs := r.fieldPtrs()
	for i, spec := range Schema {
		if i >= len(parts) {
			break // SOURCE omitted; stays empty
		}
		v := strings.TrimSpace(parts[i])
		if v == "" {
			v = spec.Fill
		}
		*ptrs[i] = v
	}
	return &r, nil
}
