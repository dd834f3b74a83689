package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus describes the repair lifecycle of an order.
type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusInWork    OrderStatus = "in_work"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	OrderStatusReceived,
	OrderStatusInWork,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Older dashboards used a different vocabulary for the pre-terminal states.
var orderStatusAliases = map[string]OrderStatus{
	"pending":     OrderStatusReceived,
	"in_progress": OrderStatusInWork,
	"completed":   OrderStatusReady,
}

// OrderStatuses lists every status in lifecycle order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

// ParseOrderStatus accepts canonical names and legacy aliases.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := orderStatusAliases[value]; ok {
		return alias, nil
	}
	status := OrderStatus(value)
	if !status.Valid() {
		return "", fmt.Errorf("unknown order status %q", raw)
	}
	return status, nil
}

func (s OrderStatus) Valid() bool {
	for _, known := range orderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// HoldsRacks reports whether line items of an order in this status keep their racks.
func (s OrderStatus) HoldsRacks() bool {
	return s != OrderStatusDelivered
}

// PaymentStatus describes how much of the order total has been collected.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch status := PaymentStatus(strings.ToLower(strings.TrimSpace(raw))); status {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return status, nil
	default:
		return "", fmt.Errorf("unknown payment status %q", raw)
	}
}

// LineItem is one article left at the shop.
type LineItem struct {
	ID        uuid.UUID
	Brand     string
	Details   string
	ServiceID string
	Rack      string
	PhotoKey  string
}

// Order is a repair order with one or more line items.
type Order struct {
	ID            uuid.UUID
	Number        string
	ClientID      uuid.UUID
	Status        OrderStatus
	Items         []LineItem
	PaymentStatus PaymentStatus
	AmountPaid    decimal.Decimal
	Notes         string
	ReceivedAt    time.Time
	DeliveryDate  *time.Time
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone returns a copy that shares no mutable state with o.
func (o Order) Clone() Order {
	out := o
	out.Items = append([]LineItem(nil), o.Items...)
	if o.DeliveryDate != nil {
		d := *o.DeliveryDate
		out.DeliveryDate = &d
	}
	if o.DeliveredAt != nil {
		d := *o.DeliveredAt
		out.DeliveredAt = &d
	}
	return out
}

// Item finds a line item by identifier.
func (o Order) Item(id uuid.UUID) (LineItem, bool) {
	for _, item := range o.Items {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}

// StatusChange records one committed lifecycle transition.
type StatusChange struct {
	OrderID         uuid.UUID
	From            OrderStatus
	To              OrderStatus
	AmountCollected decimal.Decimal
	ChangedAt       time.Time
}

// OrderSummary is an order enriched with derived amounts for display.
type OrderSummary struct {
	Order
	ClientName string
	Total      decimal.Decimal
	Pending    decimal.Decimal
}
