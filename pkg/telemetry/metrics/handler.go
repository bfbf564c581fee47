package metrics

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// ExpositionFormat is the only encoding served by the metrics endpoint,
// the Prometheus text format version 0.0.4.
var ExpositionFormat = expfmt.NewFormat(expfmt.TypeTextPlain)

// Handler returns the HTTP handler for the metrics endpoint.
//
// Each scrape gathers the registry, then every extra gatherer in order, and
// encodes the families in the text exposition format. Every registered
// descriptor gets its HELP and TYPE lines, even before its first
// observation. Output is buffered:
// if gathering or encoding fails the scrape gets a plain-text 500 and no
// part of the body. Other requests are unaffected.
//
// Example:
//
//	registry := metrics.NewRegistry()
//	mux.Handle("GET /metrics", registry.Handler())
func (r *Registry) Handler(extra ...prometheus.Gatherer) http.Handler {
	gatherers := make([]prometheus.Gatherer, 0, len(extra)+1)
	gatherers = append(gatherers, r)
	gatherers = append(gatherers, extra...)
	return Handler(gatherers...)
}

// Handler serves the given gatherers in order. Families are not merged or
// re-sorted across gatherers, so their names must not collide.
func Handler(gatherers ...prometheus.Gatherer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var buf bytes.Buffer
		if err := encodeGatherers(&buf, gatherers); err != nil {
			slog.ErrorContext(r.Context(), "metrics exposition failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", string(ExpositionFormat))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)

		if r.Method != http.MethodHead {
			_, _ = buf.WriteTo(w)
		}
	})
}

// encodeGatherers writes all families to w. A panic from a gatherer is
// turned into an error so it stays confined to the scrape.
func encodeGatherers(w io.Writer, gatherers []prometheus.Gatherer) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic while gathering metrics: %v", rec)
		}
	}()

	enc := expfmt.NewEncoder(w, ExpositionFormat)
	for _, g := range gatherers {
		if reg, ok := g.(*Registry); ok {
			if err := encodeRegistry(w, enc, reg); err != nil {
				return err
			}
			continue
		}

		families, err := g.Gather()
		if err != nil {
			return fmt.Errorf("failed to gather metrics: %w", err)
		}
		for _, mf := range families {
			if err := enc.Encode(mf); err != nil {
				return fmt.Errorf("failed to encode metric family %q: %w", mf.GetName(), err)
			}
		}
	}
	return nil
}

// encodeRegistry writes the families of reg in registration order. The
// encoder rejects families without metrics, so the header of an unobserved
// family is written directly.
func encodeRegistry(w io.Writer, enc expfmt.Encoder, reg *Registry) error {
	for _, fs := range reg.Collect() {
		if len(fs.Series) == 0 {
			d := fs.Descriptor
			if _, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s %s\n",
				d.Name, helpEscaper.Replace(d.Help), d.Name, d.Kind); err != nil {
				return fmt.Errorf("failed to write metric family %q: %w", d.Name, err)
			}
			continue
		}
		if err := enc.Encode(toMetricFamily(fs)); err != nil {
			return fmt.Errorf("failed to encode metric family %q: %w", fs.Descriptor.Name, err)
		}
	}
	return nil
}

// helpEscaper escapes HELP text like the text encoder does.
var helpEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`)
