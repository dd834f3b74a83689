package usecase

import (
	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/ledger"
)

// Module provides the in-memory ledger and core business use cases to the fx container.
var Module = fx.Provide(
	newLedger,
	NewClientUseCase,
	NewCatalogUseCase,
	NewOrderUseCase,
	NewRackUseCase,
	NewStatsUseCase,
	NewSyncUseCase,
)

func newLedger(cfg *config.Config) *ledger.Ledger {
	return ledger.New(cfg.TotalRacks)
}
