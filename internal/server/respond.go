// internal/server/respond.go
package server

import (
	"encoding/json"
	"net/http"

	"suggestion-mesh/internal/common/errors"
	"suggestion-mesh/internal/common/logger"
)

// ErrorBody is the JSON error envelope returned by all three services.
type ErrorBody struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// WriteJSON writes payload as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// WriteError normalizes err into a StandardError, logs it, and writes the
// mapped HTTP status with an ErrorBody.
func WriteError(w http.ResponseWriter, log logger.Logger, err error) {
	stdErr := errors.FromError(err)
	status := errors.HTTPStatus(stdErr.Code)

	if log != nil {
		fields := map[string]interface{}{
			"errorCode":     string(stdErr.Code),
			"errorCategory": errors.GetErrorCategory(stdErr.Code),
			"retryable":     errors.IsRetryableErrorCode(stdErr.Code),
			"httpStatus":    status,
		}
		if stdErr.Details != "" {
			fields["details"] = stdErr.Details
		}
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", fields)
		} else {
			log.Warn("Request rejected", fields)
		}
	}

	WriteJSON(w, status, ErrorBody{
		Detail: stdErr.Message,
		Code:   string(stdErr.Code),
	})
}
