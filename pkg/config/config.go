package config

import "time"

// Config is the root configuration structure for the Linked Data Web
// Service. It contains the HTTP server settings and the telemetry
// (logging and metrics) settings.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, API base path and CORS.
	Server ServerConfig `yaml:"server"`

	// Telemetry contains configuration for observability including logging
	// and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port for the server to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:3000", "0.0.0.0:3000").
	// Default: "127.0.0.1:3000"
	ListenAddress string `yaml:"listen_address"`

	// APIBasePath is the prefix under which the versioned API is mounted.
	// The v1 routes are served below APIBasePath + "/v1".
	// Default: "/api"
	APIBasePath string `yaml:"api_base_path"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response.
	// Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for in-flight requests
	// during graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing the request header's keys and values.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// SecurityHeaders adds conservative security response headers
	// (X-Content-Type-Options, X-Frame-Options, ...).
	// Default: true
	SecurityHeaders bool `yaml:"security_headers"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS (Cross-Origin Resource Sharing) configuration.
type CORSConfig struct {
	// Enabled controls whether CORS is enabled.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins is a list of allowed origins for CORS requests.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods is a list of allowed HTTP methods for CORS requests.
	// Default: ["GET", "HEAD", "OPTIONS"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders is a list of allowed HTTP headers for CORS requests.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// ExposedHeaders is a list of headers that are exposed to the client.
	// Default: ["X-Request-ID"]
	ExposedHeaders []string `yaml:"exposed_headers"`

	// MaxAge is the maximum age (in seconds) for preflight request cache.
	// Default: 3600 (1 hour)
	MaxAge int `yaml:"max_age"`

	// AllowCredentials controls whether credentials are allowed in CORS
	// requests.
	// Default: false
	AllowCredentials bool `yaml:"allow_credentials"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains trace context propagation configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// TracingConfig contains trace context propagation configuration.
type TracingConfig struct {
	// Enabled continues or starts a W3C trace for each request, logs its
	// trace_id and returns it in the X-Trace-ID header.
	// Default: true
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`

	// AccessLog logs one line per completed request.
	// Default: true
	AccessLog bool `yaml:"access_log"`
}

// MetricsConfig contains metrics collection configuration.
//
// Metric names, label sets and histogram buckets are fixed in
// pkg/telemetry/metrics and are not configurable.
type MetricsConfig struct {
	// Enabled controls whether requests are instrumented and the metrics
	// endpoint is served.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// RuntimeMetrics adds Go runtime and process metrics (lod_go_*,
	// lod_process_*) to the endpoint.
	// Default: true
	RuntimeMetrics bool `yaml:"runtime_metrics"`

	// SummarySchedule is a standard cron expression for logging a summary
	// of the request metrics. Empty disables the summary.
	// Default: "" (disabled)
	SummarySchedule string `yaml:"summary_schedule"`
}
