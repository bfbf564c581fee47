// Package config provides configuration management for the Linked Data Web
// Service.
//
// Configuration is read from a YAML file, decoded over the defaults and
// optionally overridden by environment variables:
//
//	cfg, err := config.LoadConfig("lodws.yaml")
//	cfg, err := config.LoadConfigWithEnvOverrides("lodws.yaml")
//
// An empty path yields the default configuration.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention LOD_SECTION_FIELD:
//
//   - LOD_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - LOD_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//   - LOD_TELEMETRY_METRICS_ENABLED overrides telemetry.metrics.enabled
//
// LOD_API_BASE_PATH is also honoured for server.api_base_path.
//
// # Precedence
//
//  1. Default values (defaults.go)
//  2. Values from the YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Hot Reload
//
// Watcher observes the configuration file with fsnotify and calls
// ReloadConfig after a short debounce. Hooks registered with OnReload receive
// the new configuration; the server uses this to change the log level
// without a restart. Other settings take effect on the next start.
//
// # Example Configuration
//
//	server:
//	  listen_address: "0.0.0.0:3000"
//	  api_base_path: "/api"
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "json"
//	  metrics:
//	    enabled: true
//	    path: "/metrics"
//	    summary_schedule: "*/5 * * * *"
package config
