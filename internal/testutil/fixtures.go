package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/glbatch/buko-service/internal/domain"
)

var TestOperatorID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// SampleCode is the documented reference diagnostic code from the GL batch
// job's abend output.
const SampleCode = "01BC/S/ /UM/E /  /UM/ /K/  / / /AM34   /LEIAUFGL"

// NewSubmission builds a plausible audit entry for repository tests.
func NewSubmission() *domain.Submission {
	return &domain.Submission{
		ID:             uuid.New(),
		OperatorID:     TestOperatorID,
		DiagnosticCode: SampleCode,
		BEType:         "CLAIM",
		BEC1:           "CLAIM ERROR",
		BEC2:           "ERROR",
		EncodedLine:    "CLAIM               CLAIM ERROR         ERROR               01BCS UME   UM K    AM34   LEIAUFGL  ",
		DuplicateRows:  []int64{},
		Appended:       true,
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}
