package errors

import (
	"fmt"
	"net/http"
)

// HTTPError carries a status code and a user-facing message across the delivery layer.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// IsClientError reports whether the status is a 4xx.
func (e *HTTPError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred.")
)
