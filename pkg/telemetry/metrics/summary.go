package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// SummaryScheduler periodically logs a Summary of the request metrics on a
// cron schedule. It only reads the registry.
type SummaryScheduler struct {
	collector *Collector
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewSummaryScheduler creates a scheduler for the given standard cron
// expression (e.g. "*/5 * * * *").
func NewSummaryScheduler(collector *Collector, schedule string, logger *slog.Logger) *SummaryScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryScheduler{
		collector: collector,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "metrics.summary"),
	}
}

// Start schedules the summary job. An empty schedule disables it. The
// scheduler stops when ctx is cancelled.
func (s *SummaryScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("summary schedule not configured, skipping scheduler")
		return nil
	}
	if s.running {
		return fmt.Errorf("summary scheduler already running")
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, s.logSummary); err != nil {
		return fmt.Errorf("failed to schedule metrics summary: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("metrics summary scheduler started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *SummaryScheduler) logSummary() {
	s.logger.Info("metrics summary", "summary", s.collector.Summary())
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *SummaryScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("metrics summary scheduler stopped")
}

// NextRun returns the next scheduled run, or nil if not running.
func (s *SummaryScheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}
