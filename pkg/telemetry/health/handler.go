package health

import (
	"encoding/json"
	"net/http"
)

// Handler serves the readiness endpoint: 200 with the check results when
// ready, 503 otherwise.
//
// Example response:
//
//	{
//	    "status": "ready",
//	    "checks": {
//	        "metrics": {"status": "ok", "duration_ms": 0.05},
//	        "server": {"status": "ok", "duration_ms": 0.001}
//	    },
//	    "timestamp": "2026-10-18T10:30:00Z"
//	}
func (c *Checker) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		readiness := c.Check(r.Context())

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if readiness.Ready() {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		if r.Method != http.MethodHead {
			_ = json.NewEncoder(w).Encode(readiness)
		}
	})
}
