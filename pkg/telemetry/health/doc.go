// Package health provides the readiness probe of the service.
//
// Liveness is served by GET /health in the API handlers and only reports
// that the process is up. Readiness runs the registered checks, each
// bounded by a timeout and run concurrently, and answers 503 when any of
// them fails:
//
//	checker := health.New(2 * time.Second)
//	checker.Register("metrics", func(ctx context.Context) error {
//		_, err := collector.Registry().Gather()
//		return err
//	})
//	mux.Handle("GET /ready", checker.Handler())
package health
