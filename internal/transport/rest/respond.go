package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atendely/dispatch-backend/internal/domain"
)

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code, a human message, and field
// level errors for validation failures.
type ErrorDetail struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Fields  []FieldErrorDetail `json:"fields,omitempty"`
}

// FieldErrorDetail reports one invalid input field.
type FieldErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps domain errors to HTTP statuses. Unknown errors become an
// opaque 500; the underlying message never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]FieldErrorDetail, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields = append(fields, FieldErrorDetail{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
			Code:    "validation_failed",
			Message: "invalid input",
			Fields:  fields,
		}})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{
			Code:    "validation_failed",
			Message: "invalid input",
		}})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: ErrorDetail{
			Code:    "unauthorized",
			Message: "unauthorized",
		}})
	case errors.Is(err, domain.ErrNoEligibleConsultant):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{
			Code:    "no_eligible_consultant",
			Message: "no consultant is available for dispatch",
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{
			Code:    "not_found",
			Message: "resource not found",
		}})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: ErrorDetail{
			Code:    "already_exists",
			Message: "resource already exists",
		}})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{
			Code:    "internal",
			Message: "internal server error",
		}})
	}
}

// decodeJSON reads a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	return nil
}
