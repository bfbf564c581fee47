package config

import (
	"strings"
	"testing"
)

func TestValidate_ValidConfig(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Server.ListenAddress = ""
	cfg.Telemetry.Logging.Level = "loud"
	cfg.Telemetry.Logging.Format = "xml"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	validationErr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(validationErr.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(validationErr.Errors), validationErr.Errors)
	}
}

func TestValidate_Server(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "missing listen address",
			mutate:    func(c *Config) { c.Server.ListenAddress = "" },
			wantField: "server.listen_address",
		},
		{
			name:      "base path without leading slash",
			mutate:    func(c *Config) { c.Server.APIBasePath = "api" },
			wantField: "server.api_base_path",
		},
		{
			name:      "base path with trailing slash",
			mutate:    func(c *Config) { c.Server.APIBasePath = "/api/" },
			wantField: "server.api_base_path",
		},
		{
			name:      "negative read timeout",
			mutate:    func(c *Config) { c.Server.ReadTimeout = -1 },
			wantField: "server.read_timeout",
		},
		{
			name:      "negative shutdown timeout",
			mutate:    func(c *Config) { c.Server.ShutdownTimeout = -1 },
			wantField: "server.shutdown_timeout",
		},
		{
			name:      "excessive header bytes",
			mutate:    func(c *Config) { c.Server.MaxHeaderBytes = 11 * 1024 * 1024 },
			wantField: "server.max_header_bytes",
		},
		{
			name:      "negative CORS max age",
			mutate:    func(c *Config) { c.Server.CORS.MaxAge = -5 },
			wantField: "server.cors.max_age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assertFieldError(t, Validate(cfg), tt.wantField)
		})
	}
}

func TestValidate_Telemetry(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "invalid logging level",
			mutate:    func(c *Config) { c.Telemetry.Logging.Level = "trace" },
			wantField: "telemetry.logging.level",
		},
		{
			name:      "invalid logging format",
			mutate:    func(c *Config) { c.Telemetry.Logging.Format = "xml" },
			wantField: "telemetry.logging.format",
		},
		{
			name:      "relative metrics path",
			mutate:    func(c *Config) { c.Telemetry.Metrics.Path = "metrics" },
			wantField: "telemetry.metrics.path",
		},
		{
			name:      "reserved metrics path",
			mutate:    func(c *Config) { c.Telemetry.Metrics.Path = "/health" },
			wantField: "telemetry.metrics.path",
		},
		{
			name:      "readiness path as metrics path",
			mutate:    func(c *Config) { c.Telemetry.Metrics.Path = "/ready" },
			wantField: "telemetry.metrics.path",
		},
		{
			name:      "metrics path below api base path",
			mutate:    func(c *Config) { c.Telemetry.Metrics.Path = "/api/metrics" },
			wantField: "telemetry.metrics.path",
		},
		{
			name:      "invalid summary schedule",
			mutate:    func(c *Config) { c.Telemetry.Metrics.SummarySchedule = "every minute" },
			wantField: "telemetry.metrics.summary_schedule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assertFieldError(t, Validate(cfg), tt.wantField)
		})
	}
}

func TestValidate_MetricsPathIgnoredWhenDisabled(t *testing.T) {
	cfg := Default()
	cfg.Telemetry.Metrics.Enabled = false
	cfg.Telemetry.Metrics.Path = "metrics"

	if err := Validate(cfg); err != nil {
		t.Errorf("expected no error with metrics disabled, got %v", err)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		contains []string
	}{
		{
			name:     "no errors",
			err:      ValidationError{},
			contains: []string{"configuration validation failed"},
		},
		{
			name: "single error",
			err: ValidationError{Errors: []FieldError{
				{Field: "server.listen_address", Message: "listen address is required"},
			}},
			contains: []string{"server.listen_address: listen address is required"},
		},
		{
			name: "multiple errors",
			err: ValidationError{Errors: []FieldError{
				{Field: "a", Message: "first"},
				{Field: "b", Message: "second"},
			}},
			contains: []string{"2 errors", "  - a: first", "  - b: second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("expected error message to contain %q, got %q", want, msg)
				}
			}
		})
	}
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error for field %q, got nil", field)
	}
	validationErr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	for _, fe := range validationErr.Errors {
		if fe.Field == field {
			return
		}
	}
	t.Errorf("expected error for field %q, got %v", field, validationErr.Errors)
}
