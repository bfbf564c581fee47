package handlers

import (
	"net/http"
	"time"

	"linkeddata-hq/lodws/pkg/api/middleware"
)

// ServiceInfo is the body of GET /.
type ServiceInfo struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

func (a *API) root(w http.ResponseWriter, r *http.Request) error {
	middleware.WriteJSON(w, http.StatusOK, ServiceInfo{
		Name:        "Linked Data Web Service",
		Version:     a.version,
		Description: "RESTful API for querying linked data sources",
		Endpoints: map[string]string{
			"health":        "/health",
			"api":           a.V1Path(),
			"documentation": a.V1Path() + "/docs",
		},
	})
	return nil
}

func (a *API) health(w http.ResponseWriter, r *http.Request) error {
	now := a.now()
	middleware.WriteJSON(w, http.StatusOK, HealthStatus{
		Status:    "healthy",
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Uptime:    now.Sub(a.started).Seconds(),
	})
	return nil
}
