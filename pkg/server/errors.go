package server

import (
	"net/http"

	apperrors "github.com/NVIDIA/workorder-api/pkg/errors"
	"github.com/NVIDIA/workorder-api/pkg/serializer"
)

// Envelope is the fixed JSON shape shared by every error response, so
// clients parse failures uniformly regardless of the failing endpoint.
type Envelope struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Path    string `json:"path"`
}

// HTTPStatusFromCode maps a structured error code to an HTTP status.
// Unknown codes map to 500.
func HTTPStatusFromCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes an error envelope with the given status, category
// message, and specific detail. The request path is taken from r.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, message, detail string) {
	serializer.RespondJSON(w, statusCode, Envelope{
		Message: message,
		Detail:  detail,
		Path:    r.URL.Path,
	})
}

// WriteStructuredError writes a pkg/errors StructuredError as an envelope,
// deriving the HTTP status from its code.
func WriteStructuredError(w http.ResponseWriter, r *http.Request, e *apperrors.StructuredError) {
	WriteError(w, r, HTTPStatusFromCode(e.Code), e.Message, e.Detail)
}

// WriteMethodNotAllowed writes a 405 envelope with the mandatory Allow
// header enumerating the supported verbs, e.g. "GET, POST".
func WriteMethodNotAllowed(w http.ResponseWriter, r *http.Request, allow string) {
	w.Header().Set("Allow", allow)
	WriteError(w, r, http.StatusMethodNotAllowed,
		"Method not allowed", "Allowed methods: "+allow)
}
