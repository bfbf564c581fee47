// Package server provides the HTTP server of the Linked Data Web Service.
//
// The server ties together the API handlers, the middleware chain and the
// metrics collector, and manages the lifecycle: start, background jobs
// (metrics summary, configuration watcher), signal handling and graceful
// shutdown.
//
// # Basic Usage
//
//	cfg, err := config.LoadConfigWithEnvOverrides("lodws.yaml")
//	if err != nil {
//	    return err
//	}
//	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging, os.Stdout))
//	if err != nil {
//	    return err
//	}
//
//	srv, err := server.NewServer(cfg, logger, server.WithConfigPath("lodws.yaml"))
//	if err != nil {
//	    return err
//	}
//	return srv.Start(ctx)
//
// # Middleware Chain
//
// Outermost first: request metrics, request ID, trace context, access log,
// panic recovery, security headers, CORS, then the mux. The metrics
// endpoint is mounted on the same mux, so scrapes are instrumented like
// any other request.
//
// # Shutdown
//
// Start returns after SIGINT, SIGTERM, context cancellation or Stop. The
// HTTP server is then shut down with the configured shutdown timeout, and a
// final metrics summary is logged.
package server
