package metrics

import (
	"fmt"
	"log/slog"
	"time"
)

// Metric names for outbound linked data queries.
const (
	QueriesTotalName        = Namespace + "_queries_total"
	ExternalAPIDurationName = Namespace + "_external_api_duration_seconds"
	ExternalAPIErrorsName   = Namespace + "_external_api_errors_total"
)

// ExternalAPIDurationBuckets covers 100ms to 30s upstream calls.
var ExternalAPIDurationBuckets = []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30}

// ExternalMetrics tracks calls made by route handlers to linked data
// sources (DBpedia, Geonames, ...). Handlers call it at their discretion;
// it is independent of the per-request metrics.
//
// A nil *ExternalMetrics is valid and records nothing.
type ExternalMetrics struct {
	queriesTotal *Counter
	duration     *Histogram
	errorsTotal  *Counter
	logger       *slog.Logger
}

// NewExternalMetrics registers the outbound call metrics with registry.
func NewExternalMetrics(registry *Registry, logger *slog.Logger) (*ExternalMetrics, error) {
	if logger == nil {
		logger = slog.Default()
	}

	em := &ExternalMetrics{logger: logger}

	var err error
	if em.queriesTotal, err = registry.NewCounter(QueriesTotalName,
		"Total number of linked data queries",
		"source", "endpoint"); err != nil {
		return nil, fmt.Errorf("failed to register external metrics: %w", err)
	}
	if em.duration, err = registry.NewHistogram(ExternalAPIDurationName,
		"Duration of external API requests in seconds",
		ExternalAPIDurationBuckets, "source", "endpoint"); err != nil {
		return nil, fmt.Errorf("failed to register external metrics: %w", err)
	}
	if em.errorsTotal, err = registry.NewCounter(ExternalAPIErrorsName,
		"Total number of external API errors",
		"source", "error_type"); err != nil {
		return nil, fmt.Errorf("failed to register external metrics: %w", err)
	}

	return em, nil
}

// TrackQuery counts one query against a linked data source.
//
// Example:
//
//	external.TrackQuery("dbpedia", "lookup")
func (em *ExternalMetrics) TrackQuery(source, endpoint string) {
	if em == nil {
		return
	}
	em.logDropped(em.queriesTotal.Inc(source, endpoint))
}

// TrackExternalCall records the duration of one outbound call.
func (em *ExternalMetrics) TrackExternalCall(source, endpoint string, duration time.Duration) {
	if em == nil {
		return
	}
	em.logDropped(em.duration.Observe(duration.Seconds(), source, endpoint))
}

// TrackExternalError counts one failed outbound call.
//
// Typical error types: "timeout", "canceled", "network", "http_4xx",
// "http_5xx".
func (em *ExternalMetrics) TrackExternalError(source, errorType string) {
	if em == nil {
		return
	}
	em.logDropped(em.errorsTotal.Inc(source, errorType))
}

// QueryCount returns the query counter for a source and endpoint.
func (em *ExternalMetrics) QueryCount(source, endpoint string) float64 {
	if em == nil {
		return 0
	}
	v, _ := em.queriesTotal.Value(source, endpoint)
	return v
}

func (em *ExternalMetrics) logDropped(err error) {
	if err != nil {
		em.logger.Debug("dropped metric observation", "error", err)
	}
}
