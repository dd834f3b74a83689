package handlers

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/usecase"
)

// ClientFacade encapsulates client operations exposed via HTTP.
type ClientFacade interface {
	Clients() []model.Client
	Client(id uuid.UUID) (*model.Client, error)
	CreateClient(ctx context.Context, c model.Client) (*model.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, c model.Client) (*model.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

// CatalogFacade encapsulates service catalog operations.
type CatalogFacade interface {
	Services() []model.ServiceType
	CreateService(ctx context.Context, s model.ServiceType) (*model.ServiceType, error)
	UpdateService(ctx context.Context, id string, s model.ServiceType) (*model.ServiceType, error)
	DeleteService(ctx context.Context, id string) error
}

// OrderFacade encapsulates order operations.
type OrderFacade interface {
	Services() []model.ServiceType
	Orders(filter usecase.OrderFilter) []model.OrderSummary
	Order(id uuid.UUID) (*model.OrderSummary, error)
	CreateOrder(ctx context.Context, d usecase.OrderDraft) (*model.OrderSummary, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, p usecase.OrderPatch) (*model.OrderSummary, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, acknowledged bool) (*model.OrderSummary, *model.StatusChange, error)
	BulkChangeStatus(ctx context.Context, ids []uuid.UUID, status model.OrderStatus, acknowledged bool) []usecase.StatusResult
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	OrderHistory(ctx context.Context, id uuid.UUID) ([]model.StatusChange, error)
	AttachPhoto(ctx context.Context, orderID, itemID uuid.UUID, contentType string, body io.Reader) (string, error)
	PhotoURL(ctx context.Context, orderID, itemID uuid.UUID) (string, error)
	FormatAmount(amount decimal.Decimal) string
}

// RackFacade encapsulates rack operations.
type RackFacade interface {
	Racks() []model.RackView
	FreeRacks() []string
	Rack(number string) (*model.RackView, error)
	UpdateRack(ctx context.Context, number string, p usecase.RackPatch) (*model.RackView, error)
}

// StatsFacade provides dashboard metrics.
type StatsFacade interface {
	Metrics() model.Metrics
	SnapshotMetrics(ctx context.Context) ([]model.MetricSnapshot, error)
	MetricHistory(ctx context.Context, name string, from, to time.Time) ([]model.MetricSnapshot, error)
}

// HealthFacade reports store availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	ClientFacade
	CatalogFacade
	OrderFacade
	RackFacade
	StatsFacade
	HealthFacade
}
