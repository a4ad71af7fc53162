package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user id is not in the registry.
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreUnavailable is returned when the log store cannot be reached or
	// rejects a write. Retryable by the caller; never retried internally.
	ErrStoreUnavailable = errors.New("log store unavailable")
	// ErrQueryRejected is returned when the log store reports a history query
	// as malformed (for example a missing index rule).
	ErrQueryRejected = errors.New("log store rejected query")
	// ErrRecognitionUnavailable is returned when the recognition service call
	// fails. Distinct from a successful call that found no text.
	ErrRecognitionUnavailable = errors.New("text recognition unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. External-boundary
// failures keep their wrapped cause in the message; callers branch on the
// error kind, never on message text.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrStoreUnavailable):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "STORE_UNAVAILABLE")
	case errors.Is(err, ErrQueryRejected):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "QUERY_REJECTED")
	case errors.Is(err, ErrRecognitionUnavailable):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "RECOGNITION_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
