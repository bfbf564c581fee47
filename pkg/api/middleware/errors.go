package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	// Error is a short error name, e.g. "Validation Error" or "Not Found".
	Error string `json:"error"`

	// Message is a human-readable description.
	Message string `json:"message,omitempty"`

	// Errors lists failed validation checks.
	Errors []FieldViolation `json:"errors,omitempty"`

	// Timestamp is the RFC 3339 time the error was produced.
	Timestamp string `json:"timestamp"`
}

// FieldViolation describes one failed request validation check.
type FieldViolation struct {
	// Location is where the value came from ("query" or "params").
	Location string `json:"location"`

	// Param is the parameter name.
	Param string `json:"param"`

	// Value is the rejected value.
	Value string `json:"value"`

	// Msg explains the failure.
	Msg string `json:"msg"`
}

// ValidationError is returned by handlers when request parameters are
// missing or malformed. It is rendered as 400.
type ValidationError struct {
	Violations []FieldViolation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Violations[0].Param, e.Violations[0].Msg)
}

// APIError is an error carrying its own HTTP status.
type APIError struct {
	Status  int
	Name    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates an APIError whose name is the standard status text.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Name: http.StatusText(status), Message: message}
}

// NotFound creates a 404 error for the given request.
func NotFound(r *http.Request) *APIError {
	return NewAPIError(http.StatusNotFound, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
}

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler adapts fn to http.Handler. A returned error is rendered by
// WriteError; the handler must not have written a response in that case.
//
// Example usage:
//
//	mux.Handle("GET /items/{id}", ErrorHandler(logger, getItem))
func ErrorHandler(logger *slog.Logger, fn HandlerFunc) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			WriteError(w, r, logger, err)
		}
	})
}

// WriteError maps err to a status and JSON body:
//   - *ValidationError: 400 "Validation Error"
//   - *APIError: its own status and name
//   - anything else: 500 "Internal Server Error" with a generic message
//
// Server errors are logged with the request context.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, body := errorResponse(err)

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	} else {
		logger.DebugContext(r.Context(), "request rejected",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}

	WriteJSON(w, status, body)
}

func errorResponse(err error) (int, ErrorResponse) {
	now := time.Now().UTC().Format(time.RFC3339)

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, ErrorResponse{
			Error:     "Validation Error",
			Message:   validationErr.Error(),
			Errors:    validationErr.Violations,
			Timestamp: now,
		}
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status <= 599 {
		name := apiErr.Name
		if name == "" {
			name = http.StatusText(apiErr.Status)
		}
		message := apiErr.Message
		if apiErr.Status >= http.StatusInternalServerError {
			message = "An unexpected error occurred"
		}
		return apiErr.Status, ErrorResponse{Error: name, Message: message, Timestamp: now}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error:     "Internal Server Error",
		Message:   "An unexpected error occurred",
		Timestamp: now,
	}
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	data = append(data, '\n')

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
