package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/app"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/repository"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/handlers"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/storage/postgres"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/test"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/usecase"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/worker"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:         ":0",
		DatabaseURI:        "postgres://stub",
		TotalRacks:         20,
		ResyncInterval:     time.Minute,
		StatsSchedule:      "55 23 * * *",
		ShutdownTimeout:    time.Millisecond,
		LogLevel:           slog.LevelInfo,
		CORSAllowedOrigins: []string{"*"},
		Currency:           "USD",
		Locale:             "en",
		NotifyQueueSize:    4,
		PhotoURLTTL:        time.Minute,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var (
		facade    handlers.ShopFacade
		shop      *app.ShopFacade
		sync      *usecase.SyncUseCase
		refresher *worker.Refresher
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.ClientRepository(test.NewClientRepositoryStub())),
			fx.Replace(repository.ServiceRepository(&test.ServiceRepositoryStub{})),
			fx.Replace(repository.OrderRepository(test.NewOrderRepositoryStub(model.NewCatalog()))),
			fx.Replace(repository.RackRepository(&test.RackRepositoryStub{})),
			fx.Replace(repository.StatsRepository(&test.StatsRepositoryStub{})),
		),
		fx.Populate(&facade, &shop, &sync, &refresher),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil || shop == nil || sync == nil || refresher == nil {
		t.Fatal("expected the graph to be populated")
	}
	if err := sync.LoadAll(context.Background()); err != nil {
		t.Fatalf("load all: %v", err)
	}
	if got := len(facade.FreeRacks()); got != 20 {
		t.Fatalf("expected configured rack count, got %d", got)
	}
}
