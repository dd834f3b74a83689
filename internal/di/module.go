package di

import (
	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/adapter/pgnotify"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/adapter/photos"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/adapter/sms"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/app"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/logger"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/notify"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/pkg/money"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/handlers"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/router"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/storage/postgres"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/usecase"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/worker"
)

// Module composes the whole application graph. opts are appended last so
// tests can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		money.Module,
		sms.Module,
		photos.Module,
		pgnotify.Module,
		notify.Module,
		usecase.Module,
		worker.Module,
		fx.Provide(
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(s *usecase.SyncUseCase) app.Loader { return s },
			func(f *app.ShopFacade) handlers.ShopFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
