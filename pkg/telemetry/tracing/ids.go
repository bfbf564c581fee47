package tracing

import (
	"crypto/rand"

	"go.opentelemetry.io/otel/trace"
)

// childSpanContext returns a new local span context below parent. Without a
// valid parent it starts a new sampled trace.
func childSpanContext(parent trace.SpanContext) trace.SpanContext {
	cfg := trace.SpanContextConfig{
		SpanID:     newSpanID(),
		TraceFlags: trace.FlagsSampled,
	}
	if parent.IsValid() {
		cfg.TraceID = parent.TraceID()
		cfg.TraceFlags = parent.TraceFlags()
		cfg.TraceState = parent.TraceState()
	} else {
		cfg.TraceID = newTraceID()
	}
	return trace.NewSpanContext(cfg)
}

func newTraceID() trace.TraceID {
	var id trace.TraceID
	for !id.IsValid() {
		_, _ = rand.Read(id[:])
	}
	return id
}

func newSpanID() trace.SpanID {
	var id trace.SpanID
	for !id.IsValid() {
		_, _ = rand.Read(id[:])
	}
	return id
}
