// Package telemetry groups the observability packages of the Linked Data Web
// Service.
//
// # Components
//
//   - logging: structured slog logging with request_id, route and trace_id
//   - metrics: request instrumentation and the Prometheus scrape endpoint
//   - tracing: W3C trace context propagation
//   - health: readiness checks served on /ready
//
// # Usage
//
//	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging, os.Stdout))
//	collector, err := metrics.NewCollector(&cfg.Telemetry.Metrics, logger.Slog())
//
//	handler := middleware.Chain(mux,
//		collector.Middleware,
//		middleware.RequestIDMiddleware,
//		tracing.Middleware,
//	)
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
package telemetry
