package repository

import (
	"context"
	"time"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// StatsRepository keeps a daily time series of named metrics.
type StatsRepository interface {
	Upsert(ctx context.Context, snapshots []model.MetricSnapshot) error
	History(ctx context.Context, name string, from, to time.Time) ([]model.MetricSnapshot, error)
}
