package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission is the audit record of one processed diagnostic code. The BUKO
// file itself is never stored here (the caller owns the line sequence), but
// every accepted code leaves a trail of what was derived and whether the
// encoded line was appended.
type Submission struct {
	ID             uuid.UUID
	OperatorID     uuid.UUID
	DiagnosticCode string
	BEType         string
	BEC1           string
	BEC2           string
	EncodedLine    string
	DuplicateRows  []int64
	Appended       bool
	CreatedAt      time.Time
}
