package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/glbatch/buko-service/internal/domain"
	"github.com/glbatch/buko-service/internal/logging"
)

type submissionLister interface {
	List(ctx context.Context, limit int) ([]domain.Submission, error)
}

type SubmissionHandler struct {
	repo         submissionLister
	defaultLimit int
}

func NewSubmissionHandler(repo submissionLister, defaultLimit int) *SubmissionHandler {
	return &SubmissionHandler{repo: repo, defaultLimit: defaultLimit}
}

type submissionPayload struct {
	ID             string  `json:"id"`
	OperatorID     string  `json:"operator_id"`
	DiagnosticCode string  `json:"diagnostic_code"`
	BEType         string  `json:"be_type"`
	BEC1           string  `json:"bec1"`
	BEC2           string  `json:"bec2"`
	EncodedLine    string  `json:"encoded_line"`
	DuplicateRows  []int64 `json:"duplicate_rows"`
	Appended       bool    `json:"appended"`
	CreatedAt      string  `json:"created_at"`
}

// List returns the most recent audit entries, newest first.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			RespondValidationError(w, []FieldError{{Field: "limit", Message: "must be a positive integer"}})
			return
		}
		if n < limit {
			limit = n
		}
	}

	subs, err := h.repo.List(r.Context(), limit)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to list submissions", "error", err)
		RespondDomainError(w, err)
		return
	}

	payload := make([]submissionPayload, len(subs))
	for i, s := range subs {
		rows := s.DuplicateRows
		if rows == nil {
			rows = []int64{}
		}
		payload[i] = submissionPayload{
			ID:             s.ID.String(),
			OperatorID:     s.OperatorID.String(),
			DiagnosticCode: s.DiagnosticCode,
			BEType:         s.BEType,
			BEC1:           s.BEC1,
			BEC2:           s.BEC2,
			EncodedLine:    s.EncodedLine,
			DuplicateRows:  rows,
			Appended:       s.Appended,
			CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	RespondSuccess(w, http.StatusOK, payload)
}
