package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/notify"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/worker"
)

// Module wires the facade, the HTTP server and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewShopFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

// Loader fills the in-memory ledger before traffic is accepted.
type Loader interface {
	LoadAll(ctx context.Context) error
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Loader     Loader
	Dispatcher *notify.Dispatcher
	Refresher  *worker.Refresher
	Scheduler  *worker.StatsScheduler
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	runCtx, cancel := context.WithCancel(context.Background())

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Loader.LoadAll(ctx); err != nil {
				return fmt.Errorf("load ledger: %w", err)
			}
			p.Logger.Info("starting pimp-cleaner", slog.String("addr", p.Server.Addr), slog.Int("racks", p.Config.TotalRacks))

			p.Dispatcher.Start()
			p.Refresher.Start(runCtx)
			if err := p.Scheduler.Start(runCtx); err != nil {
				p.Refresher.Stop()
				p.Dispatcher.Stop()
				return fmt.Errorf("start stats scheduler: %w", err)
			}
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			stop := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, stop = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer stop()

			err := p.Server.Shutdown(shutdownCtx)
			p.Scheduler.Stop()
			p.Refresher.Stop()
			cancel()
			p.Dispatcher.Stop()

			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("pimp-cleaner stopped")
			return nil
		},
	})
}
