package metrics

import (
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/felixge/httpsnoop"
)

// Middleware instruments every request passing through next. It must be
// the outermost stage of the chain so that it sees the final status of
// every request, including those answered by recovery or CORS middleware.
//
// On entry the in-flight gauge for the method is incremented. Completion is
// recorded exactly once when next returns, whether it returned normally,
// panicked, or the client went away. Instrumentation never changes the
// status, headers, or body of the response.
//
// Example usage:
//
//	handler = requestMetrics.Middleware(handler)
func (rm *RequestMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := &requestTracker{
			start:  time.Now(),
			method: r.Method,
			path:   r.URL.Path,
			status: http.StatusOK,
		}
		rm.drop(rm.inProgress.Inc(t.method))

		defer func() {
			if rec := recover(); rec != nil {
				// The server aborts the connection; a client that never got
				// a status is counted as a server error.
				if !t.wroteHeader {
					t.status = http.StatusInternalServerError
				}
				rm.complete(t, w.Header())
				panic(rec)
			}
			rm.complete(t, w.Header())
		}()

		next.ServeHTTP(t.wrap(w), r)
	})
}

// complete records the end of a request. Only the first call per tracker
// has any effect.
func (rm *RequestMetrics) complete(t *requestTracker, header http.Header) {
	t.once.Do(func() {
		defer func() {
			if rec := recover(); rec != nil {
				rm.logger.Error("request instrumentation failed", "panic", rec)
			}
		}()

		elapsed := time.Since(t.start)
		rm.drop(rm.inProgress.Dec(t.method))

		route := rm.route(t.path)
		status := strconv.Itoa(t.status)

		rm.drop(rm.requestDuration.Observe(elapsed.Seconds(), t.method, route, status))
		rm.drop(rm.requestsTotal.Inc(t.method, route, status))

		if size, ok := t.responseSize(header); ok {
			rm.drop(rm.responseSize.Observe(float64(size), t.method, route, status))
		}

		if class, ok := errorClass(status); ok {
			rm.drop(rm.errorsTotal.Inc(class, route, status))
		}
	})
}

// route normalizes path, falling back to UnmatchedRoute if the normalizer
// panics or yields a value that is not a valid label.
func (rm *RequestMetrics) route(path string) (route string) {
	defer func() {
		if rec := recover(); rec != nil {
			rm.logger.Debug("route normalization failed", "path", path, "panic", rec)
			route = UnmatchedRoute
		}
	}()
	route = rm.normalize(path)
	if !utf8.ValidString(route) {
		rm.logger.Debug("route is not valid UTF-8", "path", path)
		return UnmatchedRoute
	}
	return route
}

// errorClass returns "client" for 4xx and "server" for 5xx status codes.
func errorClass(status string) (string, bool) {
	if status == "" {
		return "", false
	}
	switch status[0] {
	case '4':
		return "client", true
	case '5':
		return "server", true
	default:
		return "", false
	}
}

// requestTracker carries per-request state between entry and completion.
type requestTracker struct {
	once sync.Once

	start  time.Time
	method string
	path   string

	status      int
	wroteHeader bool
	bytes       int64
}

// wrap intercepts the status code and body size. httpsnoop keeps the
// optional interfaces (Flusher, Hijacker, ReaderFrom, ...) of w intact.
func (t *requestTracker) wrap(w http.ResponseWriter) http.ResponseWriter {
	return httpsnoop.Wrap(w, httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				next(code)
				t.writeHeader(code)
			}
		},
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(b []byte) (int, error) {
				t.writeHeader(http.StatusOK)
				n, err := next(b)
				t.bytes += int64(n)
				return n, err
			}
		},
		ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
			return func(src io.Reader) (int64, error) {
				t.writeHeader(http.StatusOK)
				n, err := next(src)
				t.bytes += n
				return n, err
			}
		},
	})
}

// writeHeader keeps the first final status. Informational 1xx codes other
// than 101 Switching Protocols may precede it. Codes net/http would reject
// are ignored.
func (t *requestTracker) writeHeader(code int) {
	if t.wroteHeader || code < 100 || code > 999 {
		return
	}
	if code < 200 && code != http.StatusSwitchingProtocols {
		return
	}
	t.status = code
	t.wroteHeader = true
}

// responseSize prefers the Content-Length header and falls back to the
// number of body bytes written. A response with neither has no known size.
func (t *requestTracker) responseSize(header http.Header) (int64, bool) {
	if cl := header.Get("Content-Length"); cl != "" {
		if n, err := strconv.ParseInt(cl, 10, 64); err == nil && n >= 0 {
			return n, true
		}
	}
	if t.bytes > 0 {
		return t.bytes, true
	}
	return 0, false
}
