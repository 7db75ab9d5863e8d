package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/glbatch/buko-service/internal/auth"
	"github.com/glbatch/buko-service/internal/buko"
	"github.com/glbatch/buko-service/internal/logging"
	"github.com/glbatch/buko-service/internal/service"
)

type bukoService interface {
	Process(ctx context.Context, req service.ProcessRequest) (*service.ProcessResult, error)
}

type BukoHandler struct {
	svc          bukoService
	maxBodyBytes int64
}

func NewBukoHandler(svc bukoService, maxBodyBytes int64) *BukoHandler {
	return &BukoHandler{svc: svc, maxBodyBytes: maxBodyBytes}
}

type processRequest struct {
	DiagnosticCode string `json:"diagnostic_code"`
	BukoFile       string `json:"buko_file"`
	AllowDuplicate bool   `json:"allow_duplicate"`
}

// recordPayload mirrors a Record under the legacy column names.
type recordPayload struct {
	BK              string `json:"BK"`
	KontobezSoll    string `json:"KONTOBEZ_SOLL"`
	KontobezHaben   string `json:"KONTOBEZ_HABEN"`
	Buchart         string `json:"BUCHART"`
	Betragsart      string `json:"BETRAGSART"`
	Fordart         string `json:"FORDART"`
	Zahlart         string `json:"ZAHLART"`
	GGKontobezSoll  string `json:"GG_KONTOBEZ_SOLL"`
	GGKontobezHaben string `json:"GG_KONTOBEZ_HABEN"`
	BBZBetrart      string `json:"BBZBETRART"`
	KZVorrueck      string `json:"KZVORRUECK"`
	FLReversed      string `json:"FLREVERSED"`
	Lart            string `json:"LART"`
	Source          string `json:"SOURCE"`
}

type classificationPayload struct {
	BEType string `json:"BE_TYPE"`
	BEC1   string `json:"BEC1"`
	BEC2   string `json:"BEC2"`
}

type processResponse struct {
	Record         recordPayload         `json:"record"`
	Classification classificationPayload `json:"classification"`
	EncodedLine    string                `json:"encoded_line"`
	DuplicateRows  []int                 `json:"duplicate_rows"`
	Appended       bool                  `json:"appended"`
	RowNumber      int                   `json:"row_number,omitempty"`
	UpdatedFile    string                `json:"updated_file,omitempty"`
}

// Process runs one diagnostic code against an uploaded BUKO file snapshot.
// Duplicates are advisory: the response reports them with appended=false
// until the client resubmits with allow_duplicate.
func (h *BukoHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if !decodeBody(w, r, h.maxBodyBytes, &req) {
		return
	}

	if req.DiagnosticCode == "" {
		RespondValidationError(w, []FieldError{{Field: "diagnostic_code", Message: "required"}})
		return
	}

	operatorID, _ := auth.OperatorIDFromContext(r.Context())

	res, err := h.svc.Process(r.Context(), service.ProcessRequest{
		Code:           req.DiagnosticCode,
		Lines:          service.SplitFile(req.BukoFile),
		AllowDuplicate: req.AllowDuplicate,
		OperatorID:     operatorID,
	})
	if err != nil {
		logging.FromContext(r.Context()).Warn("processing failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	resp := processResponse{
		Record:         recordToPayload(res.Record),
		Classification: classificationToPayload(res.Classification),
		EncodedLine:    res.EncodedLine,
		DuplicateRows:  res.Duplicates,
		Appended:       res.Appended,
		RowNumber:      res.RowNumber,
	}
	if res.Appended {
		resp.UpdatedFile = service.JoinFile(res.UpdatedLines)
	}
	if resp.DuplicateRows == nil {
		resp.DuplicateRows = []int{}
	}

	RespondSuccess(w, http.StatusOK, resp)
}

func recordToPayload(r buko.Record) recordPayload {
	return recordPayload{
		BK:              r.BK,
		KontobezSoll:    r.KontobezSoll,
		KontobezHaben:   r.KontobezHaben,
		Buchart:         r.Buchart,
		Betragsart:      r.Betragsart,
		Fordart:         r.Fordart,
		Zahlart:         r.Zahlart,
		GGKontobezSoll:  r.GGKontobezSoll,
		GGKontobezHaben: r.GGKontobezHaben,
		BBZBetrart:      r.BBZBetrart,
		KZVorrueck:      r.KZVorrueck,
		FLReversed:      r.FLReversed,
		Lart:            r.Lart,
		Source:          r.Source,
	}
}

func classificationToPayload(c buko.Classification) classificationPayload {
	return classificationPayload{BEType: c.BEType, BEC1: c.BEC1, BEC2: c.BEC2}
}

// decodeBody reads a size-capped JSON body, answering the appropriate error
// response itself. Returns false when the caller should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			RespondAppError(w, ErrPayloadTooLarge, nil)
			return false
		}
		RespondAppError(w, ErrInvalidRequest, nil)
		return false
	}
	return true
}
