// Package errors provides standardized error handling for the suggestion services.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Validation errors, always surfaced to the caller and never retried.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrCodeAgentNotFound   ErrorCode = "AGENT_NOT_FOUND"

	// Dispatch errors from the agent pool.
	ErrCodeDispatchTimeout ErrorCode = "DISPATCH_TIMEOUT"

	// Enrichment errors. Absorbed at the gateway boundary, never propagated.
	ErrCodeDependencyUnavailable ErrorCode = "DEPENDENCY_UNAVAILABLE"

	// Anything unexpected caught at a service boundary.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidArgumentError creates a non-retryable validation error.
func NewInvalidArgumentError(message, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidArgument,
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyQueryError creates a non-retryable validation error for
// empty or whitespace-only queries.
func NewEmptyQueryError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidArgument,
		Message:   "Query cannot be empty",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAgentNotFoundError creates a non-retryable lookup error.
func NewAgentNotFoundError(agentID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAgentNotFound,
		Message:   "Agent not found",
		Details:   fmt.Sprintf("agentId: %s", agentID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDispatchTimeoutError creates a non-retryable whole-batch timeout error.
// The caller decides whether to reissue the dispatch; the pool never retries
// internally.
func NewDispatchTimeoutError(workerCount int, timeout time.Duration) *StandardError {
	return &StandardError{
		Code:      ErrCodeDispatchTimeout,
		Message:   "Agent processing timeout",
		Details:   fmt.Sprintf("agentCount: %d, timeout: %s", workerCount, timeout),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDependencyUnavailableError creates a retryable enrichment error. The
// gateway logs these and degrades; they never reach its caller.
func NewDependencyUnavailableError(dependency string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDependencyUnavailable,
		Message:   fmt.Sprintf("Dependency '%s' unavailable", dependency),
		Details:   err.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"dependency": dependency},
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure caught at a service boundary.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification Helpers
// ==========================

// HTTPStatus maps an error code to the HTTP status the boundary returns.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidArgument:
		return http.StatusBadRequest
	case ErrCodeAgentNotFound:
		return http.StatusNotFound
	case ErrCodeDispatchTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeDependencyUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsRetryableErrorCode reports whether an error code is considered retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return code == ErrCodeDependencyUnavailable
}

// GetErrorCategory groups error codes for logging and metrics.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeInvalidArgument, ErrCodeAgentNotFound:
		return "validation"
	case ErrCodeDispatchTimeout:
		return "timeout"
	case ErrCodeDependencyUnavailable:
		return "dependency"
	default:
		return "internal"
	}
}

// AsStandard extracts a *StandardError from err, if there is one.
func AsStandard(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// FromError coerces any error into a StandardError, wrapping unknown errors
// as INTERNAL_ERROR.
func FromError(err error) *StandardError {
	if stdErr, ok := AsStandard(err); ok {
		return stdErr
	}
	return NewInternalError(err)
}
