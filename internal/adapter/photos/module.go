package photos

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/usecase"
)

// Module exposes the photo store to the fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (usecase.PhotoStore, error) {
	if !p.Config.S3.Enabled() {
		p.Logger.Info("photo storage disabled")
		return DisabledStore{}, nil
	}
	return NewS3Store(p.Ctx, p.Config.S3, p.Config.PhotoURLTTL)
}
