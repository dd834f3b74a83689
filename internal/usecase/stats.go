package usecase

import (
	"context"
	"time"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/repository"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/ledger"
)

// StatsUseCase serves dashboard metrics and their daily history.
type StatsUseCase struct {
	stats  repository.StatsRepository
	ledger *ledger.Ledger
	now    func() time.Time
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stats repository.StatsRepository, l *ledger.Ledger) *StatsUseCase {
	return &StatsUseCase{stats: stats, ledger: l, now: time.Now}
}

// Metrics returns the live dashboard figures.
func (u *StatsUseCase) Metrics() model.Metrics {
	return u.ledger.Metrics()
}

// Snapshot records today's figures, replacing an earlier snapshot of the same day.
func (u *StatsUseCase) Snapshot(ctx context.Context) ([]model.MetricSnapshot, error) {
	snapshots := u.ledger.Metrics().Snapshot(u.now())
	if err := u.stats.Upsert(ctx, snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// History returns one metric between two days, inclusive.
func (u *StatsUseCase) History(ctx context.Context, name string, from, to time.Time) ([]model.MetricSnapshot, error) {
	if name == "" {
		return nil, domainErrors.Invalid("metric name is required")
	}
	if to.IsZero() {
		to = u.now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	if from.After(to) {
		return nil, domainErrors.Invalid("from must not be after to")
	}
	return u.stats.History(ctx, name, from, to)
}
