// Package tracing propagates W3C trace context through the service.
//
// The service does not record or export spans. It keeps a span context per
// request so that log records carry a trace_id, clients can correlate
// responses through the X-Trace-ID header, and outbound calls to linked
// data sources forward the trace in a traceparent header.
//
// # Usage
//
//	// Inbound: continue or start a trace
//	handler = tracing.Middleware(handler)
//
//	// Outbound: forward the trace, measured by the metrics transport
//	client := &http.Client{
//		Transport: metrics.NewTransport(tracing.NewTransport(nil), "dbpedia", external),
//	}
package tracing
