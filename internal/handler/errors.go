package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tripreverie/backend/internal/domain"
)

// errorDetail is the machine-readable error payload.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse wraps every error body: {"error":{"code","message"}}.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck — the response is already committed; nothing to do on encode failure.
	json.NewEncoder(w).Encode(v)
}

// writeError writes an errorResponse with the given status, code, and message.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// writeDomainError maps a sentinel-wrapped error from the service layer onto
// an HTTP status and error code. Unknown errors become a generic 500 without
// leaking internals.
func writeDomainError(w http.ResponseWriter, err error) {
	msg := unwrapMessage(err)

	switch {
	case errors.Is(err, domain.ErrBriefIncomplete):
		writeError(w, http.StatusUnprocessableEntity, "brief_incomplete", msg)
	case errors.Is(err, domain.ErrInvalidRating):
		writeError(w, http.StatusUnprocessableEntity, "invalid_rating", msg)
	case errors.Is(err, domain.ErrEmptyComment):
		writeError(w, http.StatusUnprocessableEntity, "empty_comment", msg)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", msg)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", msg)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", msg)
	case errors.Is(err, domain.ErrDraftExpired):
		writeError(w, http.StatusGone, "draft_expired", msg)
	case errors.Is(err, domain.ErrGenerationTimeout):
		writeError(w, http.StatusGatewayTimeout, "generation_timeout", msg)
	case errors.Is(err, domain.ErrGenerationMalformed):
		writeError(w, http.StatusBadGateway, "generation_malformed", msg)
	case errors.Is(err, domain.ErrSchemaMissingField):
		writeError(w, http.StatusBadGateway, "schema_missing_field", msg)
	case errors.Is(err, domain.ErrDayCountMismatch):
		writeError(w, http.StatusBadGateway, "day_count_mismatch", msg)
	case errors.Is(err, domain.ErrDayOrderingViolation):
		writeError(w, http.StatusBadGateway, "day_ordering_violation", msg)
	case errors.Is(err, domain.ErrPersistenceFailure):
		writeError(w, http.StatusServiceUnavailable, "persistence_failure", msg)
	default:
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// unwrapMessage strips the op-path prefixes that service and planner attach,
// e.g. "service.TripService.Generate: validation error: unknown vibe" becomes
// "validation error: unknown vibe". Segments are dropped while they look like
// a dotted Go path (no spaces, at least one dot).
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		head, tail, found := strings.Cut(msg, ": ")
		if !found || strings.ContainsRune(head, ' ') || !strings.ContainsRune(head, '.') {
			return msg
		}
		msg = tail
	}
}
