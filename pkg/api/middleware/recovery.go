package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"
)

// RecoveryMiddleware recovers from panics in HTTP handlers and returns a 500
// JSON error response. It logs the panic with stack trace for debugging but
// does not expose internal details to clients. http.ErrAbortHandler is
// re-raised so the server aborts the connection as intended.
//
// When the handler already started the response, nothing more is written.
//
// Example usage:
//
//	handler = RecoveryMiddleware(logger)(handler)
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tracker := &headerTracker{}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic in handler",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				if tracker.started {
					return
				}
				WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error:     "Internal Server Error",
					Message:   "An unexpected error occurred",
					Timestamp: time.Now().UTC().Format(time.RFC3339),
				})
			}()

			next.ServeHTTP(tracker.wrap(w), r)
		})
	}
}
