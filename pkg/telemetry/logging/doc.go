// Package logging provides structured logging for the Linked Data Web
// Service.
//
// The package wraps log/slog with:
//   - JSON, text and console formats
//   - a level that can be changed at runtime (SetLevel)
//   - request fields (request_id, route, trace_id) taken from the context
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil {
//	    return err
//	}
//
//	ctx = logging.WithRequestID(ctx, "0b6f...")
//	logger.InfoContext(ctx, "request completed", "status", 200)
//
// Components that accept a *slog.Logger receive logger.Slog(); loggers
// derived from it follow later SetLevel calls, which is how a configuration
// reload changes verbosity without a restart.
package logging
