package handlers

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/usecase"
)

// shopStub provides controllable behaviour for every HTTP endpoint.
// Unset functions answer with empty data or ErrNotFound.
type shopStub struct {
	ClientsFn      func() []model.Client
	ClientFn       func(uuid.UUID) (*model.Client, error)
	CreateClientFn func(context.Context, model.Client) (*model.Client, error)
	UpdateClientFn func(context.Context, uuid.UUID, model.Client) (*model.Client, error)
	DeleteClientFn func(context.Context, uuid.UUID) error

	ServiceList     []model.ServiceType
	CreateServiceFn func(context.Context, model.ServiceType) (*model.ServiceType, error)
	UpdateServiceFn func(context.Context, string, model.ServiceType) (*model.ServiceType, error)
	DeleteServiceFn func(context.Context, string) error

	OrdersFn       func(usecase.OrderFilter) []model.OrderSummary
	OrderFn        func(uuid.UUID) (*model.OrderSummary, error)
	CreateOrderFn  func(context.Context, usecase.OrderDraft) (*model.OrderSummary, error)
	UpdateOrderFn  func(context.Context, uuid.UUID, usecase.OrderPatch) (*model.OrderSummary, error)
	ChangeStatusFn func(context.Context, uuid.UUID, model.OrderStatus, bool) (*model.OrderSummary, *model.StatusChange, error)
	BulkFn         func(context.Context, []uuid.UUID, model.OrderStatus, bool) []usecase.StatusResult
	DeleteOrderFn  func(context.Context, uuid.UUID) error
	HistoryFn      func(context.Context, uuid.UUID) ([]model.StatusChange, error)
	AttachPhotoFn  func(context.Context, uuid.UUID, uuid.UUID, string, io.Reader) (string, error)
	PhotoURLFn     func(context.Context, uuid.UUID, uuid.UUID) (string, error)

	RackList     []model.RackView
	Free         []string
	RackFn       func(string) (*model.RackView, error)
	UpdateRackFn func(context.Context, string, usecase.RackPatch) (*model.RackView, error)

	MetricsValue model.Metrics
	SnapshotFn   func(context.Context) ([]model.MetricSnapshot, error)
	HistoryOfFn  func(context.Context, string, time.Time, time.Time) ([]model.MetricSnapshot, error)

	HealthErr error
}

func (s *shopStub) Clients() []model.Client {
	if s.ClientsFn != nil {
		return s.ClientsFn()
	}
	return nil
}

func (s *shopStub) Client(id uuid.UUID) (*model.Client, error) {
	if s.ClientFn != nil {
		return s.ClientFn(id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *shopStub) CreateClient(ctx context.Context, c model.Client) (*model.Client, error) {
	if s.CreateClientFn != nil {
		return s.CreateClientFn(ctx, c)
	}
	c.ID = uuid.New()
	return &c, nil
}

func (s *shopStub) UpdateClient(ctx context.Context, id uuid.UUID, c model.Client) (*model.Client, error) {
	if s.UpdateClientFn != nil {
		return s.UpdateClientFn(ctx, id, c)
	}
	c.ID = id
	return &c, nil
}

func (s *shopStub) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if s.DeleteClientFn != nil {
		return s.DeleteClientFn(ctx, id)
	}
	return nil
}

func (s *shopStub) Services() []model.ServiceType {
	return s.ServiceList
}

func (s *shopStub) CreateService(ctx context.Context, svc model.ServiceType) (*model.ServiceType, error) {
	if s.CreateServiceFn != nil {
		return s.CreateServiceFn(ctx, svc)
	}
	return &svc, nil
}

func (s *shopStub) UpdateService(ctx context.Context, id string, svc model.ServiceType) (*model.ServiceType, error) {
	if s.UpdateServiceFn != nil {
		return s.UpdateServiceFn(ctx, id, svc)
	}
	return &svc, nil
}

func (s *shopStub) DeleteService(ctx context.Context, id string) error {
	if s.DeleteServiceFn != nil {
		return s.DeleteServiceFn(ctx, id)
	}
	return nil
}

func (s *shopStub) Orders(filter usecase.OrderFilter) []model.OrderSummary {
	if s.OrdersFn != nil {
		return s.OrdersFn(filter)
	}
	return nil
}

func (s *shopStub) Order(id uuid.UUID) (*model.OrderSummary, error) {
	if s.OrderFn != nil {
		return s.OrderFn(id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *shopStub) CreateOrder(ctx context.Context, d usecase.OrderDraft) (*model.OrderSummary, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, d)
	}
	return &model.OrderSummary{Order: model.Order{ID: uuid.New(), ClientID: d.ClientID, Items: d.Items, Status: model.OrderStatusReceived}}, nil
}

func (s *shopStub) UpdateOrder(ctx context.Context, id uuid.UUID, p usecase.OrderPatch) (*model.OrderSummary, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, p)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *shopStub) ChangeStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, acknowledged bool) (*model.OrderSummary, *model.StatusChange, error) {
	if s.ChangeStatusFn != nil {
		return s.ChangeStatusFn(ctx, id, status, acknowledged)
	}
	return nil, nil, domainErrors.ErrNotFound
}

func (s *shopStub) BulkChangeStatus(ctx context.Context, ids []uuid.UUID, status model.OrderStatus, acknowledged bool) []usecase.StatusResult {
	if s.BulkFn != nil {
		return s.BulkFn(ctx, ids, status, acknowledged)
	}
	out := make([]usecase.StatusResult, 0, len(ids))
	for _, id := range ids {
		out = append(out, usecase.StatusResult{OrderID: id, Err: domainErrors.ErrNotFound})
	}
	return out
}

func (s *shopStub) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

func (s *shopStub) OrderHistory(ctx context.Context, id uuid.UUID) ([]model.StatusChange, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, id)
	}
	return nil, nil
}

func (s *shopStub) AttachPhoto(ctx context.Context, orderID, itemID uuid.UUID, contentType string, body io.Reader) (string, error) {
	if s.AttachPhotoFn != nil {
		return s.AttachPhotoFn(ctx, orderID, itemID, contentType, body)
	}
	return "", domainErrors.ErrPhotosDisabled
}

func (s *shopStub) PhotoURL(ctx context.Context, orderID, itemID uuid.UUID) (string, error) {
	if s.PhotoURLFn != nil {
		return s.PhotoURLFn(ctx, orderID, itemID)
	}
	return "", domainErrors.ErrPhotosDisabled
}

// FormatAmount renders amounts as dollars.
func (s *shopStub) FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func (s *shopStub) Racks() []model.RackView {
	return s.RackList
}

func (s *shopStub) FreeRacks() []string {
	return s.Free
}

func (s *shopStub) Rack(number string) (*model.RackView, error) {
	if s.RackFn != nil {
		return s.RackFn(number)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *shopStub) UpdateRack(ctx context.Context, number string, p usecase.RackPatch) (*model.RackView, error) {
	if s.UpdateRackFn != nil {
		return s.UpdateRackFn(ctx, number, p)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *shopStub) Metrics() model.Metrics {
	return s.MetricsValue
}

func (s *shopStub) SnapshotMetrics(ctx context.Context) ([]model.MetricSnapshot, error) {
	if s.SnapshotFn != nil {
		return s.SnapshotFn(ctx)
	}
	return nil, nil
}

func (s *shopStub) MetricHistory(ctx context.Context, name string, from, to time.Time) ([]model.MetricSnapshot, error) {
	if s.HistoryOfFn != nil {
		return s.HistoryOfFn(ctx, name, from, to)
	}
	return nil, nil
}

func (s *shopStub) HealthCheck(ctx context.Context) error {
	return s.HealthErr
}

var _ ShopFacade = (*shopStub)(nil)
