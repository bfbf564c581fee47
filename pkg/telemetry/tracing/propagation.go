package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// W3C Trace Context Propagation
//
// traceparent: version-trace_id-parent_id-trace_flags
// Example: 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01
//
// A request arriving with a valid traceparent keeps its trace ID and gets a
// new span ID; the incoming span becomes its parent. Outbound calls to
// linked data sources carry the trace ID with a fresh span ID each, so an
// upstream log line can be matched to the request that caused it.

// TraceIDHeader echoes the trace ID of a request in its response.
const TraceIDHeader = "X-Trace-ID"

var propagator propagation.TextMapPropagator = propagation.NewCompositeTextMapPropagator(
	propagation.TraceContext{},
	propagation.Baggage{},
)

// Propagator returns the W3C trace context and baggage propagator.
func Propagator() propagation.TextMapPropagator {
	return propagator
}

// Extract returns ctx carrying the trace context found in headers, if any.
func Extract(ctx context.Context, headers http.Header) context.Context {
	return propagator.Extract(ctx, propagation.HeaderCarrier(headers))
}

// Inject writes the trace context of ctx into headers.
func Inject(ctx context.Context, headers http.Header) {
	propagator.Inject(ctx, propagation.HeaderCarrier(headers))
}

// Middleware gives every request a span context. An incoming traceparent is
// continued; otherwise a new sampled trace is started. The trace ID is
// returned in the X-Trace-ID response header.
//
// Usage:
//
//	handler = tracing.Middleware(handler)
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := Extract(r.Context(), r.Header)
		sc := childSpanContext(trace.SpanContextFromContext(ctx))
		ctx = trace.ContextWithSpanContext(ctx, sc)

		w.Header().Set(TraceIDHeader, sc.TraceID().String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TraceID returns the trace ID of ctx, or "" if it has none.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
