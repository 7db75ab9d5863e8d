// Package service orchestrates the BUKO codec into the abend-processing
// workflow: one diagnostic code plus one file snapshot in, a classified,
// validated, duplicate-checked line out.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glbatch/buko-service/internal/buko"
	"github.com/glbatch/buko-service/internal/domain"
	"github.com/glbatch/buko-service/internal/logging"
)

// ValidationError carries the full batch of business-rule violations for a
// well-formed but unacceptable record.
type ValidationError struct {
	Violations []buko.Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record failed validation: %d violation(s)", len(e.Violations))
}

type SubmissionRecorder interface {
	Create(ctx context.Context, s *domain.Submission) error
}

type ProcessRequest struct {
	Code           string
	Lines          []string
	AllowDuplicate bool
	OperatorID     uuid.UUID
}

type ProcessResult struct {
	Record         buko.Record
	Classification buko.Classification
	EncodedLine    string
	Duplicates     []int
	Appended       bool
	RowNumber      int      // 1-based position of the new line; 0 when not appended
	UpdatedLines   []string // nil when not appended
}

type BukoService struct {
	submissions SubmissionRecorder
}

func NewBukoService(submissions SubmissionRecorder) *BukoService {
	return &BukoService{submissions: submissions}
}

// Process runs the full abend workflow: parse the diagnostic code, validate
// the record, derive the classification, check the existing lines for
// duplicates, and encode the new line. Duplicates are advisory: when found
// and not explicitly allowed, the result reports them and nothing is
// appended; the caller may resubmit with AllowDuplicate set.
//
// Parse failures surface as *buko.FormatError and validation failures as
// *ValidationError. The input line sequence is never mutated.
func (s *BukoService) Process(ctx context.Context, req ProcessRequest) (*ProcessResult, error) {
	rec, err := buko.Parse(req.Code)
	if err != nil {
		return nil, fmt.Errorf("Process: %w", err)
	}

	if violations := buko.Validate(rec); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	cls := buko.Classify(rec.KontobezSoll, rec.KontobezHaben)

	res := &ProcessResult{
		Record:         *rec,
		Classification: cls,
		EncodedLine:    buko.EncodeLine(cls, rec),
		Duplicates:     buko.FindDuplicates(rec, req.Lines),
	}

	if len(res.Duplicates) > 0 && !req.AllowDuplicate {
		return res, nil
	}

	res.UpdatedLines = make([]string, 0, len(req.Lines)+1)
	res.UpdatedLines = append(res.UpdatedLines, req.Lines...)
	res.UpdatedLines = append(res.UpdatedLines, res.EncodedLine)
	res.RowNumber = len(res.UpdatedLines)
	res.Appended = true

	s.record(ctx, req, res)
	return res, nil
}

// record writes the audit trail. Audit failures must not lose the operator's
// work, so they are logged and swallowed.
func (s *BukoService) record(ctx context.Context, req ProcessRequest, res *ProcessResult) {
	if s.submissions == nil {
		return
	}

	duplicates := make([]int64, len(res.Duplicates))
	for i, d := range res.Duplicates {
		duplicates[i] = int64(d)
	}

	sub := &domain.Submission{
		ID:             uuid.New(),
		OperatorID:     req.OperatorID,
		DiagnosticCode: strings.TrimSpace(req.Code),
		BEType:         res.Classification.BEType,
		BEC1:           res.Classification.BEC1,
		BEC2:           res.Classification.BEC2,
		EncodedLine:    res.EncodedLine,
		DuplicateRows:  duplicates,
		Appended:       res.Appended,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		logging.FromContext(ctx).Warn("failed to record submission", "error", err)
	}
}

// SplitFile breaks an uploaded BUKO file into lines, tolerating CRLF line
// endings and a trailing newline.
func SplitFile(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// JoinFile is the inverse of SplitFile, producing the downloadable artifact.
func JoinFile(lines []string) string {
	return strings.Join(lines, "\n")
}
