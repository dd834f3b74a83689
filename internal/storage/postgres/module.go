package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.Factory { return s },
		func(f repository.Factory) repository.ClientRepository { return f.Clients() },
		func(f repository.Factory) repository.ServiceRepository { return f.Services() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.RackRepository { return f.Racks() },
		func(f repository.Factory) repository.StatsRepository { return f.Stats() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
