package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	configPath := writeConfig(t, `
server:
  listen_address: "0.0.0.0:8080"
  read_timeout: "60s"
  api_base_path: "/lod"

telemetry:
  logging:
    level: "debug"
    format: "text"
  metrics:
    path: "/internal/metrics"
    summary_schedule: "*/5 * * * *"
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:8080" {
		t.Errorf("expected listen address %q, got %q", "0.0.0.0:8080", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != 60*time.Second {
		t.Errorf("expected read timeout %v, got %v", 60*time.Second, cfg.Server.ReadTimeout)
	}
	if cfg.Server.APIBasePath != "/lod" {
		t.Errorf("expected api base path %q, got %q", "/lod", cfg.Server.APIBasePath)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected logging level %q, got %q", "debug", cfg.Telemetry.Logging.Level)
	}
	if cfg.Telemetry.Metrics.Path != "/internal/metrics" {
		t.Errorf("expected metrics path %q, got %q", "/internal/metrics", cfg.Telemetry.Metrics.Path)
	}
	if cfg.Telemetry.Metrics.SummarySchedule != "*/5 * * * *" {
		t.Errorf("expected summary schedule %q, got %q", "*/5 * * * *", cfg.Telemetry.Metrics.SummarySchedule)
	}

	// Booleans absent from the file keep their defaults.
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics to stay enabled")
	}
	if !cfg.Server.CORS.Enabled {
		t.Error("expected CORS to stay enabled")
	}
	// Unset durations are defaulted.
	if cfg.Server.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("expected write timeout %v, got %v", DefaultWriteTimeout, cfg.Server.WriteTimeout)
	}
}

func TestLoadConfig_ExplicitFalse(t *testing.T) {
	configPath := writeConfig(t, `
telemetry:
  metrics:
    enabled: false
    runtime_metrics: false
  tracing:
    enabled: false
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics to be disabled")
	}
	if cfg.Telemetry.Metrics.RuntimeMetrics {
		t.Error("expected runtime metrics to be disabled")
	}
	if cfg.Telemetry.Tracing.Enabled {
		t.Error("expected tracing to be disabled")
	}
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}
	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("expected listen address %q, got %q", DefaultListenAddress, cfg.Server.ListenAddress)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for non-existent file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	configPath := writeConfig(t, `
server:
  listen_address: "127.0.0.1:3000"
  invalid yaml here: [unclosed
`)

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	configPath := writeConfig(t, `
telemetry:
  logging:
    level: "verbose"
`)

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(validationErr.Errors) != 1 || validationErr.Errors[0].Field != "telemetry.logging.level" {
		t.Errorf("expected single telemetry.logging.level error, got %v", validationErr.Errors)
	}
}

func TestLoadConfigWithEnvOverrides_BasicOverrides(t *testing.T) {
	configPath := writeConfig(t, `
server:
  listen_address: "127.0.0.1:3000"

telemetry:
  logging:
    level: "info"
`)

	t.Setenv("LOD_SERVER_LISTEN_ADDRESS", "0.0.0.0:9090")
	t.Setenv("LOD_TELEMETRY_LOGGING_LEVEL", "debug")
	t.Setenv("LOD_TELEMETRY_METRICS_PATH", "/prom")

	cfg, err := LoadConfigWithEnvOverrides(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("expected listen address %q from env, got %q", "0.0.0.0:9090", cfg.Server.ListenAddress)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected logging level %q from env, got %q", "debug", cfg.Telemetry.Logging.Level)
	}
	if cfg.Telemetry.Metrics.Path != "/prom" {
		t.Errorf("expected metrics path %q from env, got %q", "/prom", cfg.Telemetry.Metrics.Path)
	}
}

func TestLoadConfigWithEnvOverrides_APIBasePath(t *testing.T) {
	t.Setenv("LOD_API_BASE_PATH", "/lod")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Server.APIBasePath != "/lod" {
		t.Errorf("expected api base path %q from env, got %q", "/lod", cfg.Server.APIBasePath)
	}
}

func TestLoadConfigWithEnvOverrides_TypedParsing(t *testing.T) {
	t.Setenv("LOD_SERVER_READ_TIMEOUT", "45s")
	t.Setenv("LOD_SERVER_MAX_HEADER_BYTES", "2048")
	t.Setenv("LOD_TELEMETRY_METRICS_ENABLED", "false")
	t.Setenv("LOD_SERVER_CORS_ENABLED", "0")
	t.Setenv("LOD_TELEMETRY_TRACING_ENABLED", "false")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("expected read timeout %v, got %v", 45*time.Second, cfg.Server.ReadTimeout)
	}
	if cfg.Server.MaxHeaderBytes != 2048 {
		t.Errorf("expected max header bytes %d, got %d", 2048, cfg.Server.MaxHeaderBytes)
	}
	if cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics to be disabled from env")
	}
	if cfg.Server.CORS.Enabled {
		t.Error("expected CORS to be disabled from env")
	}
	if cfg.Telemetry.Tracing.Enabled {
		t.Error("expected tracing to be disabled from env")
	}
}

func TestLoadConfigWithEnvOverrides_InvalidEnvValues(t *testing.T) {
	t.Setenv("LOD_SERVER_READ_TIMEOUT", "soon")
	t.Setenv("LOD_SERVER_MAX_HEADER_BYTES", "lots")
	t.Setenv("LOD_TELEMETRY_METRICS_ENABLED", "maybe")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("expected read timeout %v, got %v", DefaultReadTimeout, cfg.Server.ReadTimeout)
	}
	if cfg.Server.MaxHeaderBytes != DefaultMaxHeaderBytes {
		t.Errorf("expected max header bytes %d, got %d", DefaultMaxHeaderBytes, cfg.Server.MaxHeaderBytes)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics to stay enabled")
	}
}

func TestLoadConfigWithEnvOverrides_InvalidAfterOverride(t *testing.T) {
	t.Setenv("LOD_TELEMETRY_LOGGING_FORMAT", "xml")

	_, err := LoadConfigWithEnvOverrides("")
	if err == nil {
		t.Fatal("expected validation error after env override, got nil")
	}
	if !strings.Contains(err.Error(), "after environment overrides") {
		t.Errorf("expected env override validation error, got %v", err)
	}
}
