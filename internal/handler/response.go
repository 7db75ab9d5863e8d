package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/glbatch/buko-service/internal/buko"
	"github.com/glbatch/buko-service/internal/domain"
	"github.com/glbatch/buko-service/internal/service"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func RespondSuccess(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Error:   nil,
	})
}

func RespondAppError(w http.ResponseWriter, appErr *AppError, details any) {
	RespondJSON(w, appErr.Status, APIResponse{
		Success: false,
		Data:    nil,
		Error: &APIError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		},
	})
}

func RespondValidationError(w http.ResponseWriter, fields []FieldError) {
	RespondAppError(w, ErrValidationFailed, fields)
}

// RespondDomainError maps service and codec errors to API errors. Format
// errors carry the parser's message; validation errors carry the full
// violation batch as field details.
func RespondDomainError(w http.ResponseWriter, err error) {
	var formatErr *buko.FormatError
	if errors.As(err, &formatErr) {
		RespondAppError(w, &AppError{
			Status:  ErrInvalidFormat.Status,
			Code:    ErrInvalidFormat.Code,
			Message: formatErr.Error(),
		}, nil)
		return
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		fields := make([]FieldError, len(validationErr.Violations))
		for i, v := range validationErr.Violations {
			fields[i] = FieldError{Field: v.Field, Message: v.Message}
		}
		RespondValidationError(w, fields)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		RespondAppError(w, ErrResourceNotFound, nil)
	case errors.Is(err, domain.ErrInvalidRequest):
		RespondAppError(w, ErrInvalidRequest, nil)
	default:
		slog.Error("unhandled domain error", "error", err)
		RespondAppError(w, ErrInternalError, nil)
	}
}
