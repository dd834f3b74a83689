package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/repository"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/ledger"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/pkg/money"
)

// OrderDraft is the input of a new order. An empty payment status is derived
// from the amount paid.
type OrderDraft struct {
	ClientID      uuid.UUID
	Items         []model.LineItem
	PaymentStatus model.PaymentStatus
	AmountPaid    decimal.Decimal
	Notes         string
	DeliveryDate  *time.Time
}

// OrderPatch lists the fields an update replaces. Nil fields are kept.
// ClearDeliveryDate removes the target date and wins over DeliveryDate.
type OrderPatch struct {
	Notes             *string
	DeliveryDate      *time.Time
	ClearDeliveryDate bool
	PaymentStatus     *model.PaymentStatus
	AmountPaid        *decimal.Decimal
	Items             []model.LineItem
}

func (p OrderPatch) onlyNotes() bool {
	return p.DeliveryDate == nil && !p.ClearDeliveryDate && p.PaymentStatus == nil && p.AmountPaid == nil && p.Items == nil
}

// StatusResult reports one element of a bulk status change.
type StatusResult struct {
	OrderID uuid.UUID
	Order   *model.OrderSummary
	Change  *model.StatusChange
	Err     error
}

// OrderFilter narrows List. Zero values match everything.
type OrderFilter struct {
	Status   model.OrderStatus
	ClientID uuid.UUID
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	ledger   *ledger.Ledger
	numbers  *ledger.NumberGenerator
	notifier Notifier
	photos   PhotoStore
	money    *money.Formatter
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, l *ledger.Ledger, notifier Notifier, photos PhotoStore, formatter *money.Formatter, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		ledger:   l,
		numbers:  ledger.NewNumberGenerator(time.Now),
		notifier: notifier,
		photos:   photos,
		money:    formatter,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns orders newest first with client names and derived amounts.
func (u *OrderUseCase) List(filter OrderFilter) []model.OrderSummary {
	all := u.ledger.Summaries()
	if filter.Status == "" && filter.ClientID == uuid.Nil {
		return all
	}
	out := make([]model.OrderSummary, 0, len(all))
	for _, s := range all {
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.ClientID != uuid.Nil && s.ClientID != filter.ClientID {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (u *OrderUseCase) Get(id uuid.UUID) (*model.OrderSummary, error) {
	o, ok := u.ledger.Order(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	s := u.ledger.Summary(o)
	return &s, nil
}

// Create registers a received order. Its racks are checked against every
// in-shop order before anything is written.
func (u *OrderUseCase) Create(ctx context.Context, d OrderDraft) (*model.OrderSummary, error) {
	now := u.now()
	order := model.Order{
		ID:            uuid.New(),
		Number:        u.numbers.Next(),
		ClientID:      d.ClientID,
		Status:        model.OrderStatusReceived,
		Items:         normalizeItems(d.Items),
		PaymentStatus: d.PaymentStatus,
		AmountPaid:    d.AmountPaid,
		Notes:         strings.TrimSpace(d.Notes),
		ReceivedAt:    now,
		DeliveryDate:  d.DeliveryDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := u.ledger.CheckOrder(order); err != nil {
		return nil, err
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = ledger.DerivePaymentStatus(order.AmountPaid, ledger.Total(order, u.ledger.Catalog()))
	} else if !validPaymentStatus(order.PaymentStatus) {
		return nil, fmt.Errorf("%w: payment status %q", domainErrors.ErrInvalidStatus, order.PaymentStatus)
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	u.apply(*created)
	u.logger.Info("order received", slog.String("order", created.Number), slog.Int("items", len(created.Items)))
	return u.Get(created.ID)
}

// Update edits a stored order. Delivered orders only accept new notes.
func (u *OrderUseCase) Update(ctx context.Context, id uuid.UUID, patch OrderPatch) (*model.OrderSummary, error) {
	if patch.PaymentStatus != nil && !validPaymentStatus(*patch.PaymentStatus) {
		return nil, fmt.Errorf("%w: payment status %q", domainErrors.ErrInvalidStatus, *patch.PaymentStatus)
	}
	if patch.AmountPaid != nil && patch.AmountPaid.IsNegative() {
		return nil, fmt.Errorf("%w: amount paid cannot be negative", domainErrors.ErrInvalidAmount)
	}

	updated, _, err := u.orders.Mutate(ctx, id, func(o *model.Order, catalog model.Catalog) (*model.StatusChange, error) {
		if o.Status == model.OrderStatusDelivered && !patch.onlyNotes() {
			return nil, domainErrors.ErrOrderDelivered
		}
		if patch.Notes != nil {
			o.Notes = strings.TrimSpace(*patch.Notes)
		}
		switch {
		case patch.ClearDeliveryDate:
			o.DeliveryDate = nil
		case patch.DeliveryDate != nil:
			o.DeliveryDate = patch.DeliveryDate
		}
		if patch.Items != nil {
			o.Items = keepPhotos(normalizeItems(patch.Items), *o)
		}
		if patch.AmountPaid != nil {
			o.AmountPaid = *patch.AmountPaid
		}
		if patch.Items != nil {
			if err := u.ledger.CheckOrder(*o); err != nil {
				return nil, err
			}
		}
		switch {
		case patch.PaymentStatus != nil:
			o.PaymentStatus = *patch.PaymentStatus
		case patch.AmountPaid != nil || patch.Items != nil:
			o.PaymentStatus = ledger.DerivePaymentStatus(o.AmountPaid, ledger.Total(*o, catalog))
		}
		o.UpdatedAt = u.now()
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	u.apply(*updated)
	return u.Get(updated.ID)
}

// ChangeStatus moves an order through its lifecycle. Delivering an order
// with an outstanding balance fails with a PendingPaymentError unless the
// operator acknowledged collecting it.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, id uuid.UUID, target model.OrderStatus, acknowledged bool) (*model.OrderSummary, *model.StatusChange, error) {
	updated, change, err := u.orders.Mutate(ctx, id, func(o *model.Order, catalog model.Catalog) (*model.StatusChange, error) {
		return ledger.ChangeStatus(o, target, acknowledged, u.now(), catalog)
	})
	if err != nil {
		return nil, nil, err
	}
	u.apply(*updated)
	if change != nil {
		u.announce(ctx, *updated, *change)
	}
	summary, err := u.Get(updated.ID)
	if err != nil {
		return nil, nil, err
	}
	return summary, change, nil
}

// BulkChangeStatus applies ChangeStatus to each order independently.
func (u *OrderUseCase) BulkChangeStatus(ctx context.Context, ids []uuid.UUID, target model.OrderStatus, acknowledged bool) []StatusResult {
	results := make([]StatusResult, 0, len(ids))
	for _, id := range ids {
		summary, change, err := u.ChangeStatus(ctx, id, target, acknowledged)
		results = append(results, StatusResult{OrderID: id, Order: summary, Change: change, Err: err})
	}
	return results
}

func (u *OrderUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.orders.Delete(ctx, id); err != nil {
		return err
	}
	u.ledger.RemoveOrder(id)
	return nil
}

// History lists the committed status changes of an order, oldest first.
func (u *OrderUseCase) History(ctx context.Context, id uuid.UUID) ([]model.StatusChange, error) {
	if _, ok := u.ledger.Order(id); !ok {
		return nil, domainErrors.ErrNotFound
	}
	return u.orders.History(ctx, id)
}

var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
}

// AttachPhoto uploads a picture of a line item and records its key.
func (u *OrderUseCase) AttachPhoto(ctx context.Context, orderID, itemID uuid.UUID, contentType string, body io.Reader) (string, error) {
	order, ok := u.ledger.Order(orderID)
	if !ok {
		return "", domainErrors.ErrNotFound
	}
	if _, ok := order.Item(itemID); !ok {
		return "", fmt.Errorf("%w: item %s", domainErrors.ErrNotFound, itemID)
	}
	ext, ok := photoExtensions[strings.ToLower(contentType)]
	if !ok {
		return "", domainErrors.Invalid("unsupported photo type %q", contentType)
	}

	key := fmt.Sprintf("orders/%s/%s/%s.%s", orderID, itemID, uuid.New(), ext)
	if err := u.photos.Upload(ctx, key, contentType, body); err != nil {
		return "", err
	}
	if err := u.orders.SetPhoto(ctx, orderID, itemID, key); err != nil {
		return "", err
	}

	if current, ok := u.ledger.Order(orderID); ok {
		for i := range current.Items {
			if current.Items[i].ID == itemID {
				current.Items[i].PhotoKey = key
			}
		}
		u.apply(current)
	}
	return key, nil
}

// PhotoURL returns a short-lived link to a line item photo.
func (u *OrderUseCase) PhotoURL(ctx context.Context, orderID, itemID uuid.UUID) (string, error) {
	order, ok := u.ledger.Order(orderID)
	if !ok {
		return "", domainErrors.ErrNotFound
	}
	item, ok := order.Item(itemID)
	if !ok || item.PhotoKey == "" {
		return "", domainErrors.ErrNotFound
	}
	return u.photos.URL(ctx, item.PhotoKey)
}

// FormatAmount renders an amount in the shop currency.
func (u *OrderUseCase) FormatAmount(amount decimal.Decimal) string {
	return u.money.Format(amount)
}

func (u *OrderUseCase) apply(o model.Order) {
	if err := u.ledger.PutOrder(o); err != nil {
		u.logger.Warn("ledger out of step with store", slog.String("order", o.Number), slog.String("error", err.Error()))
	}
}

func (u *OrderUseCase) announce(ctx context.Context, o model.Order, change model.StatusChange) {
	u.logger.Info("order status changed",
		slog.String("order", o.Number),
		slog.String("from", string(change.From)),
		slog.String("to", string(change.To)),
	)

	switch change.To {
	case model.OrderStatusReady:
		client, ok := u.ledger.Client(o.ClientID)
		if !ok || client.Phone == "" {
			return
		}
		u.notifier.Notify(ctx, model.Notification{
			Title:     "Order ready",
			Message:   fmt.Sprintf("Hi %s, your order %s is ready for pickup.", client.Name, o.Number),
			Severity:  model.SeverityInfo,
			Recipient: client.Phone,
		})
	case model.OrderStatusDelivered:
		if change.AmountCollected.IsPositive() {
			u.notifier.Notify(ctx, model.Notification{
				Title:    "Payment collected",
				Message:  fmt.Sprintf("%s collected on delivery of %s", u.money.Format(change.AmountCollected), o.Number),
				Severity: model.SeverityInfo,
			})
		}
	}
}

func normalizeItems(items []model.LineItem) []model.LineItem {
	out := make([]model.LineItem, len(items))
	for i, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.Brand = strings.TrimSpace(item.Brand)
		item.Details = strings.TrimSpace(item.Details)
		item.ServiceID = strings.TrimSpace(item.ServiceID)
		item.Rack = ledger.NormalizeRack(item.Rack)
		out[i] = item
	}
	return out
}

func keepPhotos(items []model.LineItem, previous model.Order) []model.LineItem {
	for i := range items {
		if prev, ok := previous.Item(items[i].ID); ok && items[i].PhotoKey == "" {
			items[i].PhotoKey = prev.PhotoKey
		}
	}
	return items
}

func validPaymentStatus(s model.PaymentStatus) bool {
	_, err := model.ParsePaymentStatus(string(s))
	return err == nil
}

// IsPaymentPending extracts the outstanding amount from a delivery gate error.
func IsPaymentPending(err error) (decimal.Decimal, bool) {
	var pending *domainErrors.PendingPaymentError
	if errors.As(err, &pending) {
		return pending.Pending, true
	}
	return decimal.Zero, false
}
