package http

import (
	"encoding/json"
	"net/http"

	"opeec-backend/internal/logger"

	ierr "opeec-backend/internal/errors"
)

// retryAfterSeconds is sent with 503 responses while pricing is unavailable.
const retryAfterSeconds = "30"

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError translates err into a status code and JSON error body. Server
// side failures only expose their hint, never the underlying cause.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := ierr.HTTPStatus(err)
	detail := errorDetail{Code: ierr.Code(err)}

	if status >= http.StatusInternalServerError {
		detail.Message = ierr.Hint(err, "internal server error")
		logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	} else {
		detail.Message = ierr.Hint(err, err.Error())
		if detail.Message != err.Error() {
			detail.Details = err.Error()
		}
		logger.Warn("Request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}

	if ierr.IsSettingsUnavailable(err) {
		w.Header().Set("Retry-After", retryAfterSeconds)
	}
	writeJSON(w, status, errorBody{Error: detail})
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return ierr.WithHint(ierr.NewError("empty request body", ierr.ErrValidation), "Request body is required", ierr.ErrValidation)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return ierr.WithHint(ierr.Wrap(err, "malformed request body", ierr.ErrValidation), "Request body is not valid JSON", ierr.ErrValidation)
	}
	return nil
}
