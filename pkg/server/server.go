package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"linkeddata-hq/lodws/pkg/api/handlers"
	"linkeddata-hq/lodws/pkg/api/middleware"
	"linkeddata-hq/lodws/pkg/config"
	"linkeddata-hq/lodws/pkg/telemetry/health"
	"linkeddata-hq/lodws/pkg/telemetry/logging"
	"linkeddata-hq/lodws/pkg/telemetry/metrics"
	"linkeddata-hq/lodws/pkg/telemetry/tracing"
)

// Server is the HTTP server of the Linked Data Web Service.
type Server struct {
	config     *config.Config
	logger     *logging.Logger
	collector  *metrics.Collector
	api        *handlers.API
	readiness  *health.Checker
	configPath string

	httpServer   *http.Server
	listener     net.Listener
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// Option configures a Server.
type Option func(*Server)

// WithConfigPath enables hot reload of the log level from the given
// configuration file.
func WithConfigPath(path string) Option {
	return func(s *Server) {
		s.configPath = path
	}
}

// WithVersion sets the version reported by the API.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.api = handlers.New(handlers.Options{
			BasePath: s.config.Server.APIBasePath,
			Version:  version,
			Queries:  s.collector.External(),
			Logger:   s.logger.Slog(),
		})
	}
}

// NewServer creates a server and registers its metrics. A registration
// failure is returned and must abort startup.
func NewServer(cfg *config.Config, logger *logging.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server: config is required")
	}
	if logger == nil {
		var err error
		if logger, err = logging.New(logging.FromConfig(cfg.Telemetry.Logging, nil)); err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
	}

	metricsCfg := cfg.Telemetry.Metrics
	collector, err := metrics.NewCollector(&metricsCfg, logger.Slog().With("component", "metrics"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	s := &Server{
		config:       cfg,
		logger:       logger,
		collector:    collector,
		readiness:    health.New(0),
		shutdownChan: make(chan struct{}),
	}
	s.registerReadinessChecks()
	s.api = handlers.New(handlers.Options{
		BasePath: cfg.Server.APIBasePath,
		Queries:  collector.External(),
		Logger:   logger.Slog(),
	})

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// registerReadinessChecks makes GET /ready fail until the server is
// serving, and while the metrics registry cannot be gathered.
func (s *Server) registerReadinessChecks() {
	s.readiness.Register("server", func(context.Context) error {
		if !s.IsRunning() {
			return errors.New("server not running")
		}
		return nil
	})
	if s.config.Telemetry.Metrics.Enabled {
		s.readiness.Register("metrics", func(context.Context) error {
			_, err := s.collector.Registry().Gather()
			return err
		})
	}
}

// Collector returns the metrics collector of the server.
func (s *Server) Collector() *metrics.Collector {
	return s.collector
}

// Start starts the HTTP server and blocks until ctx is cancelled, a
// shutdown signal arrives, or the server fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}

	ln, err := net.Listen("tcp", s.config.Server.ListenAddress)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.ListenAddress, err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:        s.setupRoutes(),
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}
	s.isRunning = true
	s.mu.Unlock()

	bgCtx, cancelBackground := context.WithCancel(ctx)
	defer cancelBackground()
	s.startBackground(bgCtx)

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting server",
			"address", ln.Addr().String(),
			"api_base_path", s.config.Server.APIBasePath,
			"metrics_enabled", s.config.Telemetry.Metrics.Enabled,
			"metrics_path", s.config.Telemetry.Metrics.Path,
		)

		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		return err
	case <-s.shutdownChan:
		s.logger.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// startBackground runs the summary scheduler and the config watcher until
// ctx is done. Failures are logged; the server keeps serving without them.
func (s *Server) startBackground(ctx context.Context) {
	if s.config.Telemetry.Metrics.Enabled {
		scheduler := metrics.NewSummaryScheduler(s.collector, s.config.Telemetry.Metrics.SummarySchedule, s.logger.Slog())
		if err := scheduler.Start(ctx); err != nil {
			s.logger.Error("failed to start metrics summary", "error", err)
		}
	}

	if s.configPath == "" {
		return
	}

	config.OnReload(func(cfg *config.Config) {
		if err := s.logger.SetLevel(cfg.Telemetry.Logging.Level); err != nil {
			s.logger.Error("failed to apply reloaded log level", "error", err)
			return
		}
		s.logger.Info("log level updated", "level", cfg.Telemetry.Logging.Level)
	})

	watcher, err := config.NewWatcher(s.configPath, s.logger.Slog().With("component", "config"))
	if err != nil {
		s.logger.Error("failed to start config watcher", "error", err)
		return
	}
	go func() {
		if err := watcher.Run(ctx); err != nil {
			s.logger.Error("config watcher stopped", "error", err)
		}
	}()
}

// Stop asks a running Start to shut down gracefully.
func (s *Server) Stop() {
	select {
	case <-s.shutdownChan:
	default:
		close(s.shutdownChan)
	}
}

// Shutdown gracefully shuts down the server, waiting up to the configured
// shutdown timeout for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.logger.Info("initiating graceful shutdown", "timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("server stopped", "summary", s.collector.Summary())
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain. Request
// metrics wrap everything else so that every response, including recovered
// panics and 404s, is observed.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	if s.config.Telemetry.Metrics.Enabled {
		mux.Handle(s.config.Telemetry.Metrics.Path, s.collector.Handler())
	}
	mux.Handle("GET /ready", s.readiness.Handler())
	s.api.Register(mux)

	logger := s.logger.Slog()

	var accessLog middleware.Middleware
	if s.config.Telemetry.Logging.AccessLog {
		accessLog = middleware.LoggingMiddleware(logger)
	}
	var traceContext middleware.Middleware
	if s.config.Telemetry.Tracing.Enabled {
		traceContext = tracing.Middleware
	}
	var securityHeaders middleware.Middleware
	if s.config.Server.SecurityHeaders {
		securityHeaders = middleware.SecurityHeadersMiddleware
	}

	return middleware.Chain(mux,
		s.collector.Middleware,
		middleware.RequestIDMiddleware,
		traceContext,
		accessLog,
		middleware.RecoveryMiddleware(logger),
		securityHeaders,
		middleware.CORSMiddleware(s.config.Server.CORS),
	)
}

// Addr returns the address the server listens on, or "" before Start.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}
