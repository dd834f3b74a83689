package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// Snapshotter records the current dashboard metrics.
type Snapshotter interface {
	Snapshot(ctx context.Context) ([]model.MetricSnapshot, error)
}

// StatsScheduler records metric snapshots on a cron schedule.
type StatsScheduler struct {
	stats    Snapshotter
	schedule string
	logger   *slog.Logger

	cron   *cron.Cron
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStatsScheduler constructs scheduler for a standard five-field cron expression.
func NewStatsScheduler(stats Snapshotter, schedule string, logger *slog.Logger) *StatsScheduler {
	return &StatsScheduler{stats: stats, schedule: schedule, logger: logger}
}

// Start registers the snapshot job and starts the cron runner.
func (s *StatsScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	c := cron.New()
	if _, err := c.AddFunc(s.schedule, func() { s.snapshot(runCtx) }); err != nil {
		cancel()
		return err
	}
	c.Start()

	s.cron = c
	s.cancel = cancel
	s.logger.Info("stats scheduler started", slog.String("schedule", s.schedule))
	return nil
}

// Stop halts the runner and waits for a running snapshot to return.
func (s *StatsScheduler) Stop() {
	s.mu.Lock()
	c, cancel := s.cron, s.cancel
	s.cron, s.cancel = nil, nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	cancel()
	<-c.Stop().Done()
}

func (s *StatsScheduler) snapshot(ctx context.Context) {
	snapshots, err := s.stats.Snapshot(ctx)
	if err != nil {
		s.logger.Error("metrics snapshot failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("metrics snapshot recorded", slog.Int("metrics", len(snapshots)))
}
