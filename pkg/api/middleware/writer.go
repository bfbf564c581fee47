package middleware

import (
	"io"
	"net/http"

	"github.com/felixge/httpsnoop"
)

// headerTracker records whether a response has been started. The wrapped
// writer keeps the optional interfaces (Flusher, Hijacker, ReaderFrom) of
// the original.
type headerTracker struct {
	started bool
}

func (t *headerTracker) wrap(w http.ResponseWriter) http.ResponseWriter {
	return httpsnoop.Wrap(w, httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				t.started = true
				next(code)
			}
		},
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(b []byte) (int, error) {
				t.started = true
				return next(b)
			}
		},
		ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
			return func(src io.Reader) (int64, error) {
				t.started = true
				return next(src)
			}
		},
	})
}
