package metrics

import (
	"fmt"
	"log/slog"
)

// Metric names for inbound HTTP requests.
const (
	RequestDurationName     = Namespace + "_http_request_duration_seconds"
	RequestsTotalName       = Namespace + "_http_requests_total"
	RequestsInProgressName  = Namespace + "_http_requests_in_progress"
	ResponseSizeName        = Namespace + "_http_response_size_bytes"
	ErrorsTotalName         = Namespace + "_errors_total"
	InvalidObservationsName = Namespace + "_metrics_invalid_observations_total"
)

var (
	// RequestDurationBuckets covers fast lookups (1ms) up to slow upstreams (5s).
	RequestDurationBuckets = []float64{0.001, 0.005, 0.015, 0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 1, 2, 5}

	// ResponseSizeBuckets covers 100B to 1MB.
	ResponseSizeBuckets = []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000}
)

// RequestMetrics tracks inbound HTTP requests.
//
// Metrics:
//   - lod_http_request_duration_seconds{method,route,status_code}
//   - lod_http_requests_total{method,route,status_code}
//   - lod_http_requests_in_progress{method}
//   - lod_http_response_size_bytes{method,route,status_code}
//   - lod_errors_total{type,route,status_code}
//   - lod_metrics_invalid_observations_total
//
// Use Middleware to attach it to a handler chain.
type RequestMetrics struct {
	requestDuration     *Histogram
	requestsTotal       *Counter
	inProgress          *Gauge
	responseSize        *Histogram
	errorsTotal         *Counter
	invalidObservations *Counter

	logger *slog.Logger

	// normalize derives the route label; replaced in tests.
	normalize func(path string) string
}

// NewRequestMetrics registers the request metrics with registry. It fails if
// any of the names is already taken.
func NewRequestMetrics(registry *Registry, logger *slog.Logger) (*RequestMetrics, error) {
	if logger == nil {
		logger = slog.Default()
	}

	rm := &RequestMetrics{
		logger:    logger,
		normalize: NormalizeRoute,
	}

	var err error
	if rm.requestDuration, err = registry.NewHistogram(RequestDurationName,
		"Duration of HTTP requests in seconds",
		RequestDurationBuckets, "method", "route", "status_code"); err != nil {
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}
	if rm.requestsTotal, err = registry.NewCounter(RequestsTotalName,
		"Total number of HTTP requests",
		"method", "route", "status_code"); err != nil {
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}
	if rm.inProgress, err = registry.NewGauge(RequestsInProgressName,
		"Number of HTTP requests currently being processed",
		"method"); err != nil {
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}
	if rm.responseSize, err = registry.NewHistogram(ResponseSizeName,
		"Size of HTTP responses in bytes",
		ResponseSizeBuckets, "method", "route", "status_code"); err != nil {
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}
	if rm.errorsTotal, err = registry.NewCounter(ErrorsTotalName,
		"Total number of errors",
		"type", "route", "status_code"); err != nil {
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}
	if rm.invalidObservations, err = registry.NewCounter(InvalidObservationsName,
		"Total number of metric observations dropped because they were invalid"); err != nil {
		return nil, fmt.Errorf("failed to register request metrics: %w", err)
	}

	return rm, nil
}

// InProgress returns the current in-flight count for method.
func (rm *RequestMetrics) InProgress(method string) float64 {
	v, _ := rm.inProgress.Value(method)
	return v
}

// RequestCount returns the number of completed requests for a label set.
func (rm *RequestMetrics) RequestCount(method, route, statusCode string) float64 {
	v, _ := rm.requestsTotal.Value(method, route, statusCode)
	return v
}

// drop tallies and logs an observation error. It never fails.
func (rm *RequestMetrics) drop(err error) {
	if err == nil {
		return
	}
	_ = rm.invalidObservations.Inc()
	rm.logger.Debug("dropped metric observation", "error", err)
}
