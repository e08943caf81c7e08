// Package httpx holds JSON helpers shared by the admin API handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/fantakl/votes-admin/pkg/attr"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err onto a status code and a human-readable message.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, body := Describe(err)
	if status >= http.StatusInternalServerError && logger != nil {
		logger.ErrorContext(r.Context(), "Request failed",
			attr.ExtractCorrelationID(r.Context()),
			attr.String("path", r.URL.Path),
			attr.Int("status", status),
			attr.Error(err),
		)
	}
	WriteJSON(w, status, body)
}

// Describe returns the status code and response body for err.
func Describe(err error) (int, ErrorResponse) {
	var (
		ve  *apperrors.ValidationError
		rpc *apperrors.RemoteProcedureError
		na  *apperrors.NotAuthorizedError
	)
	switch {
	case errors.As(err, &rpc):
		return http.StatusBadGateway, ErrorResponse{Error: rpc.Error()}
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, ErrorResponse{Error: err.Error()}
	case errors.As(err, &ve):
		return http.StatusBadRequest, ErrorResponse{Error: ve.Error(), Field: ve.Field}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: err.Error()}
	case errors.As(err, &na):
		return http.StatusUnauthorized, ErrorResponse{Error: na.Error()}
	case errors.Is(err, apperrors.ErrPersistence):
		return http.StatusInternalServerError, ErrorResponse{Error: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "internal error"}
	}
}

// DecodeJSON reads a bounded JSON body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	return nil
}

// UUIDParam parses a chi URL parameter as a UUID.
func UUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}
