package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// Transport is an http.RoundTripper that reports every outbound request to
// ExternalMetrics under a fixed source name. The endpoint label is the
// normalized request path.
type Transport struct {
	// Base executes the request. If nil, http.DefaultTransport is used.
	Base http.RoundTripper

	// Source is the linked data source label, e.g. "dbpedia".
	Source string

	metrics *ExternalMetrics
}

// NewTransport wraps base so that calls to source are measured.
func NewTransport(base http.RoundTripper, source string, em *ExternalMetrics) *Transport {
	return &Transport{
		Base:    base,
		Source:  source,
		metrics: em,
	}
}

// RoundTrip executes a single HTTP transaction and records its duration,
// and an error type when the call failed or returned an error status.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	endpoint := NormalizeRoute(req.URL.Path)

	start := time.Now()
	resp, err := base.RoundTrip(req)
	t.metrics.TrackExternalCall(t.Source, endpoint, time.Since(start))

	if err != nil {
		t.metrics.TrackExternalError(t.Source, transportErrorType(err))
		return nil, err
	}

	switch {
	case resp.StatusCode >= 500:
		t.metrics.TrackExternalError(t.Source, "http_5xx")
	case resp.StatusCode >= 400:
		t.metrics.TrackExternalError(t.Source, "http_4xx")
	}

	return resp, nil
}

func transportErrorType(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	default:
		return "network"
	}
}
