// Package apierror defines the structured error shape every HTTP
// endpoint returns.
package apierror

import "net/http"

// Error is a structured API error with an HTTP status and a stable
// machine-readable code.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// BadRequest creates a 400 Bad Request error.
func BadRequest(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Code: "BAD_REQUEST", Message: message}
}

// NotFound creates a 404 Not Found error.
func NotFound(message string) *Error {
	if message == "" {
		message = "resource not found"
	}
	return &Error{StatusCode: http.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

// Unavailable creates a 503 Service Unavailable error.
func Unavailable(message string) *Error {
	if message == "" {
		message = "service temporarily unavailable"
	}
	return &Error{StatusCode: http.StatusServiceUnavailable, Code: "UNAVAILABLE", Message: message}
}

// Internal creates a 500 Internal Server Error.
func Internal(message string) *Error {
	if message == "" {
		message = "an unexpected error occurred"
	}
	return &Error{StatusCode: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: message}
}

// OrderFailed creates a 502 error telling the client to retry the
// order submission.
func OrderFailed(message string) *Error {
	if message == "" {
		message = "order could not be saved, please retry"
	}
	return &Error{StatusCode: http.StatusBadGateway, Code: "ORDER_FAILED", Message: message}
}
