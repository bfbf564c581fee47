package metrics

import (
	"fmt"
	"log/slog"
	"net/http"

	"linkeddata-hq/lodws/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name exposed by the service.
const Namespace = "lod"

// Collector wires the metric subsystems of the service together: one
// Registry, the request and external call metrics registered on it, and
// optionally the Go runtime and process collectors.
//
// A Collector is built once at startup and handed to the server, which
// installs Middleware first in its chain and mounts Handler on the metrics
// path. Tests construct their own Collector, so parallel tests never share
// metric state.
type Collector struct {
	config   *config.MetricsConfig
	registry *Registry

	// Request metrics
	requestMetrics *RequestMetrics

	// Outbound linked data calls
	externalMetrics *ExternalMetrics

	// Go runtime and process metrics, nil unless enabled
	runtime *prometheus.Registry
}

// NewCollector creates a collector with a fresh registry. It returns an
// error if any metric fails to register, which callers treat as fatal.
//
// Example:
//
//	cfg := &config.MetricsConfig{Enabled: true, Path: "/metrics"}
//	collector, err := metrics.NewCollector(cfg, slog.Default())
func NewCollector(cfg *config.MetricsConfig, logger *slog.Logger) (*Collector, error) {
	if cfg == nil {
		cfg = &config.MetricsConfig{Enabled: true}
	}

	registry := NewRegistry()

	requestMetrics, err := NewRequestMetrics(registry, logger)
	if err != nil {
		return nil, err
	}

	externalMetrics, err := NewExternalMetrics(registry, logger)
	if err != nil {
		return nil, err
	}

	c := &Collector{
		config:          cfg,
		registry:        registry,
		requestMetrics:  requestMetrics,
		externalMetrics: externalMetrics,
	}

	if cfg.RuntimeMetrics {
		c.runtime = NewRuntimeRegistry(Namespace + "_")
	}

	return c, nil
}

// Registry returns the application metric registry.
func (c *Collector) Registry() *Registry {
	return c.registry
}

// Requests returns the inbound request metrics.
func (c *Collector) Requests() *RequestMetrics {
	return c.requestMetrics
}

// External returns the outbound call metrics, or nil when metrics are
// disabled. ExternalMetrics methods accept a nil receiver.
func (c *Collector) External() *ExternalMetrics {
	if !c.config.Enabled {
		return nil
	}
	return c.externalMetrics
}

// Middleware instruments next, or returns it unchanged when metrics are
// disabled.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	if !c.config.Enabled {
		return next
	}
	return c.requestMetrics.Middleware(next)
}

// Handler returns the exposition handler. With runtime metrics enabled the
// runtime families follow the application families, and the handler counts
// its own scrapes in promhttp_metric_handler_requests_total.
func (c *Collector) Handler() http.Handler {
	if c.runtime == nil {
		return c.registry.Handler()
	}
	return promhttp.InstrumentMetricHandler(c.runtime, c.registry.Handler(c.runtime))
}

// Summary returns totals over the current request metrics, used by the
// periodic summary log.
func (c *Collector) Summary() Summary {
	var s Summary
	for _, fs := range c.registry.Collect() {
		switch fs.Descriptor.Name {
		case RequestsTotalName:
			for _, series := range fs.Series {
				s.Requests += series.Value
			}
			s.Routes = len(fs.Series)
		case RequestsInProgressName:
			for _, series := range fs.Series {
				s.InProgress += series.Value
			}
		case ErrorsTotalName:
			for _, series := range fs.Series {
				s.Errors += series.Value
			}
		}
		s.Series += len(fs.Series)
	}
	return s
}

// Summary aggregates request metrics across all label combinations.
type Summary struct {
	Requests   float64
	InProgress float64
	Errors     float64

	// Routes is the number of distinct method/route/status combinations.
	Routes int

	// Series is the number of series across all families.
	Series int
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("requests", s.Requests),
		slog.Float64("in_progress", s.InProgress),
		slog.Float64("errors", s.Errors),
		slog.Int("routes", s.Routes),
		slog.Int("series", s.Series),
	)
}

func (s Summary) String() string {
	return fmt.Sprintf("requests=%g in_progress=%g errors=%g routes=%d series=%d",
		s.Requests, s.InProgress, s.Errors, s.Routes, s.Series)
}
