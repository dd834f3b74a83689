package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/repository"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/ledger"
)

// Tables whose changes are announced on the notification channel.
const (
	TableClients    = "clients"
	TableServices   = "services"
	TableOrders     = "orders"
	TableOrderItems = "order_items"
	TableRacks      = "racks"
)

// SyncUseCase refreshes the ledger from the store.
type SyncUseCase struct {
	clients  repository.ClientRepository
	services repository.ServiceRepository
	orders   repository.OrderRepository
	racks    repository.RackRepository
	ledger   *ledger.Ledger
	logger   *slog.Logger
}

// SyncParams lists the collections the ledger is rebuilt from.
type SyncParams struct {
	fx.In

	Clients  repository.ClientRepository
	Services repository.ServiceRepository
	Orders   repository.OrderRepository
	Racks    repository.RackRepository
	Ledger   *ledger.Ledger
	Logger   *slog.Logger
}

// NewSyncUseCase constructs SyncUseCase.
func NewSyncUseCase(p SyncParams) *SyncUseCase {
	return &SyncUseCase{
		clients:  p.Clients,
		services: p.Services,
		orders:   p.Orders,
		racks:    p.Racks,
		ledger:   p.Ledger,
		logger:   p.Logger,
	}
}

// LoadAll replaces every collection. The catalog and clients load before
// orders so order summaries never point at missing rows.
func (u *SyncUseCase) LoadAll(ctx context.Context) error {
	for _, table := range []string{TableServices, TableClients, TableRacks, TableOrders} {
		if err := u.Reload(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

// Reload refetches the whole collection behind a changed table.
func (u *SyncUseCase) Reload(ctx context.Context, table string) error {
	switch table {
	case TableClients:
		clients, err := u.clients.List(ctx)
		if err != nil {
			return fmt.Errorf("load clients: %w", err)
		}
		u.ledger.ReplaceClients(clients)
	case TableServices:
		services, err := u.services.List(ctx)
		if err != nil {
			return fmt.Errorf("load services: %w", err)
		}
		u.ledger.ReplaceCatalog(model.NewCatalog(services...))
	case TableOrders, TableOrderItems:
		orders, err := u.orders.List(ctx)
		if err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		if err := u.ledger.ReplaceOrders(orders); err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
	case TableRacks:
		racks, err := u.racks.List(ctx)
		if err != nil {
			return fmt.Errorf("load racks: %w", err)
		}
		u.ledger.ReplaceRacks(racks)
	default:
		return fmt.Errorf("unknown table %q", table)
	}
	u.logger.Debug("ledger reloaded", slog.String("table", table))
	return nil
}
