package tracing

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// Transport is an http.RoundTripper that propagates the trace context of
// the request context to the upstream server. Requests without a span
// context are sent unchanged.
type Transport struct {
	// Base executes the request. If nil, http.DefaultTransport is used.
	Base http.RoundTripper
}

// NewTransport wraps base with trace context propagation.
func NewTransport(base http.RoundTripper) *Transport {
	return &Transport{Base: base}
}

// RoundTrip injects traceparent (and baggage, if present) with a new span
// ID. The caller's request is not modified.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	parent := trace.SpanContextFromContext(req.Context())
	if !parent.IsValid() {
		return base.RoundTrip(req)
	}

	ctx := trace.ContextWithSpanContext(req.Context(), childSpanContext(parent))
	out := req.Clone(ctx)
	Inject(ctx, out.Header)

	return base.RoundTrip(out)
}
