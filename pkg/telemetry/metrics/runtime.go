package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRuntimeRegistry returns a Prometheus registry with the Go runtime and
// process collectors, their names prefixed with prefix (e.g. "lod_"
// yields lod_go_goroutines, lod_process_cpu_seconds_total).
//
// It is served after the application registry by Handler.
func NewRuntimeRegistry(prefix string) *prometheus.Registry {
	registry := prometheus.NewRegistry()

	prometheus.WrapRegistererWithPrefix(prefix, registry).MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}
