package worker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/adapter/pgnotify"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/usecase"
)

// Module provides background workers.
var Module = fx.Provide(newRefresher, newStatsScheduler)

type refresherParams struct {
	fx.In

	Listener *pgnotify.Listener
	Sync     *usecase.SyncUseCase
	Config   *config.Config
	Logger   *slog.Logger
}

func newRefresher(p refresherParams) *Refresher {
	return NewRefresher(p.Listener, p.Sync, p.Config.ResyncInterval, p.Logger)
}

type schedulerParams struct {
	fx.In

	Stats  *usecase.StatsUseCase
	Config *config.Config
	Logger *slog.Logger
}

func newStatsScheduler(p schedulerParams) *StatsScheduler {
	return NewStatsScheduler(p.Stats, p.Config.StatsSchedule, p.Logger)
}
