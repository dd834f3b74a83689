package app

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/usecase"
)

// HealthChecker reports whether the store answers.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade exposes the use cases as one surface for the HTTP layer.
type ShopFacade struct {
	clients *usecase.ClientUseCase
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
	racks   *usecase.RackUseCase
	stats   *usecase.StatsUseCase
	health  HealthChecker
}

// FacadeParams lists the use cases behind the facade.
type FacadeParams struct {
	fx.In

	Clients *usecase.ClientUseCase
	Catalog *usecase.CatalogUseCase
	Orders  *usecase.OrderUseCase
	Racks   *usecase.RackUseCase
	Stats   *usecase.StatsUseCase
	Health  HealthChecker
}

func NewShopFacade(p FacadeParams) *ShopFacade {
	return &ShopFacade{
		clients: p.Clients,
		catalog: p.Catalog,
		orders:  p.Orders,
		racks:   p.Racks,
		stats:   p.Stats,
		health:  p.Health,
	}
}

func (f *ShopFacade) Clients() []model.Client {
	return f.clients.List()
}

func (f *ShopFacade) Client(id uuid.UUID) (*model.Client, error) {
	return f.clients.Get(id)
}

func (f *ShopFacade) CreateClient(ctx context.Context, c model.Client) (*model.Client, error) {
	return f.clients.Create(ctx, c)
}

func (f *ShopFacade) UpdateClient(ctx context.Context, id uuid.UUID, c model.Client) (*model.Client, error) {
	return f.clients.Update(ctx, id, c)
}

func (f *ShopFacade) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return f.clients.Delete(ctx, id)
}

func (f *ShopFacade) Services() []model.ServiceType {
	return f.catalog.List()
}

func (f *ShopFacade) CreateService(ctx context.Context, s model.ServiceType) (*model.ServiceType, error) {
	return f.catalog.Create(ctx, s)
}

func (f *ShopFacade) UpdateService(ctx context.Context, id string, s model.ServiceType) (*model.ServiceType, error) {
	return f.catalog.Update(ctx, id, s)
}

func (f *ShopFacade) DeleteService(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *ShopFacade) Orders(filter usecase.OrderFilter) []model.OrderSummary {
	return f.orders.List(filter)
}

func (f *ShopFacade) Order(id uuid.UUID) (*model.OrderSummary, error) {
	return f.orders.Get(id)
}

func (f *ShopFacade) CreateOrder(ctx context.Context, d usecase.OrderDraft) (*model.OrderSummary, error) {
	return f.orders.Create(ctx, d)
}

func (f *ShopFacade) UpdateOrder(ctx context.Context, id uuid.UUID, p usecase.OrderPatch) (*model.OrderSummary, error) {
	return f.orders.Update(ctx, id, p)
}

func (f *ShopFacade) ChangeStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, acknowledged bool) (*model.OrderSummary, *model.StatusChange, error) {
	return f.orders.ChangeStatus(ctx, id, status, acknowledged)
}

func (f *ShopFacade) BulkChangeStatus(ctx context.Context, ids []uuid.UUID, status model.OrderStatus, acknowledged bool) []usecase.StatusResult {
	return f.orders.BulkChangeStatus(ctx, ids, status, acknowledged)
}

func (f *ShopFacade) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return f.orders.Delete(ctx, id)
}

func (f *ShopFacade) OrderHistory(ctx context.Context, id uuid.UUID) ([]model.StatusChange, error) {
	return f.orders.History(ctx, id)
}

func (f *ShopFacade) AttachPhoto(ctx context.Context, orderID, itemID uuid.UUID, contentType string, body io.Reader) (string, error) {
	return f.orders.AttachPhoto(ctx, orderID, itemID, contentType, body)
}

func (f *ShopFacade) PhotoURL(ctx context.Context, orderID, itemID uuid.UUID) (string, error) {
	return f.orders.PhotoURL(ctx, orderID, itemID)
}

func (f *ShopFacade) FormatAmount(amount decimal.Decimal) string {
	return f.orders.FormatAmount(amount)
}

func (f *ShopFacade) Racks() []model.RackView {
	return f.racks.List()
}

func (f *ShopFacade) FreeRacks() []string {
	return f.racks.Free()
}

func (f *ShopFacade) Rack(number string) (*model.RackView, error) {
	return f.racks.Get(number)
}

func (f *ShopFacade) UpdateRack(ctx context.Context, number string, p usecase.RackPatch) (*model.RackView, error) {
	return f.racks.Update(ctx, number, p)
}

func (f *ShopFacade) Metrics() model.Metrics {
	return f.stats.Metrics()
}

func (f *ShopFacade) SnapshotMetrics(ctx context.Context) ([]model.MetricSnapshot, error) {
	return f.stats.Snapshot(ctx)
}

func (f *ShopFacade) MetricHistory(ctx context.Context, name string, from, to time.Time) ([]model.MetricSnapshot, error) {
	return f.stats.History(ctx, name, from, to)
}

func (f *ShopFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
