// Package metrics provides request instrumentation and Prometheus metrics
// exposition for the Linked Data Web Service.
//
// # Overview
//
// The package owns its own metric Registry instead of relying on the global
// Prometheus registry. A Registry holds Counter, Gauge and Histogram
// instruments, creates a series lazily for every new combination of label
// values, and keeps them for the life of the process. Collect returns a
// deterministic snapshot: families in registration order, series in the
// order their label values were first seen.
//
// # Metrics Categories
//
//   - Request Metrics: duration, count, in-flight requests, response size
//   - Error Metrics: 4xx and 5xx responses by class
//   - External Metrics: linked data queries, upstream latency and errors
//   - Runtime Metrics: Go runtime and process collectors (optional)
//
// # Usage
//
//	// Create collector once at startup
//	collector, err := metrics.NewCollector(&cfg.Telemetry.Metrics, logger)
//	if err != nil {
//		return err
//	}
//
//	// Instrument every request (outermost middleware)
//	handler = collector.Middleware(handler)
//
//	// Expose metrics
//	mux.Handle("GET /metrics", collector.Handler())
//
//	// Record outbound calls from route handlers
//	collector.External().TrackQuery("dbpedia", "lookup")
//
// # Route Labels
//
// Raw paths are turned into route labels by NormalizeRoute, which collapses
// numeric, UUID and long slug-like segments:
//
//	/api/v1/dbpedia/lookup/42                                   -> /api/v1/dbpedia/lookup/:id
//	/api/v1/x/123e4567-e89b-12d3-a456-426614174000              -> /api/v1/x/:uuid
//	/api/v1/x/abcdefghij12345                                   -> /api/v1/x/:slug
//
// # Failure Handling
//
// Registration errors are returned to the caller and are fatal at startup.
// Observation errors (wrong label arity, negative counter deltas) are
// dropped by the middleware and counted in
// lod_metrics_invalid_observations_total. Instrumentation never changes the
// response of the request it observes.
//
// # Prometheus Endpoint
//
// The handler serves the text exposition format, version 0.0.4:
//
//	# HELP lod_http_requests_total Total number of HTTP requests
//	# TYPE lod_http_requests_total counter
//	lod_http_requests_total{method="GET",route="/api/v1/dbpedia/lookup/:id",status_code="200"} 1
package metrics
