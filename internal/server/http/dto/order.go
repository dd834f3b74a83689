package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRequest describes one article. ID is optional and keeps the
// identity (and photo) of an existing item on updates.
type LineItemRequest struct {
	ID        uuid.UUID `json:"id"`
	Brand     string    `json:"brand"`
	Details   string    `json:"details"`
	ServiceID string    `json:"service_id"`
	Rack      string    `json:"rack"`
}

// CreateOrderRequest describes POST /api/orders payload.
type CreateOrderRequest struct {
	ClientID      uuid.UUID         `json:"client_id"`
	Items         []LineItemRequest `json:"items"`
	PaymentStatus string            `json:"payment_status"`
	AmountPaid    decimal.Decimal   `json:"amount_paid"`
	Notes         string            `json:"notes"`
	DeliveryDate  *Date             `json:"delivery_date"`
}

// UpdateOrderRequest describes PUT /api/orders/:id payload. Absent fields are
// left untouched; ClearDeliveryDate drops the target date.
type UpdateOrderRequest struct {
	Notes             *string           `json:"notes"`
	DeliveryDate      *Date             `json:"delivery_date"`
	ClearDeliveryDate bool              `json:"clear_delivery_date"`
	PaymentStatus     *string           `json:"payment_status"`
	AmountPaid        *decimal.Decimal  `json:"amount_paid"`
	Items             []LineItemRequest `json:"items"`
}

// StatusRequest describes POST /api/orders/:id/status payload.
type StatusRequest struct {
	Status       string `json:"status"`
	Acknowledged bool   `json:"acknowledged"`
}

// BulkStatusRequest describes POST /api/orders/status payload.
type BulkStatusRequest struct {
	OrderIDs     []uuid.UUID `json:"order_ids"`
	Status       string      `json:"status"`
	Acknowledged bool        `json:"acknowledged"`
}

// LineItemResponse describes one article of an order.
type LineItemResponse struct {
	ID        string          `json:"id"`
	Brand     string          `json:"brand"`
	Details   string          `json:"details,omitempty"`
	ServiceID string          `json:"service_id"`
	Service   string          `json:"service,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Rack      string          `json:"rack"`
	HasPhoto  bool            `json:"has_photo"`
}

// OrderResponse describes an order with derived amounts.
type OrderResponse struct {
	ID            string             `json:"id"`
	Number        string             `json:"number"`
	ClientID      string             `json:"client_id"`
	ClientName    string             `json:"client_name"`
	Status        string             `json:"status"`
	Items         []LineItemResponse `json:"items"`
	PaymentStatus string             `json:"payment_status"`
	AmountPaid    decimal.Decimal    `json:"amount_paid"`
	Total         decimal.Decimal    `json:"total"`
	Pending       decimal.Decimal    `json:"pending"`
	Notes         string             `json:"notes,omitempty"`
	ReceivedAt    time.Time          `json:"received_at"`
	DeliveryDate  *Date              `json:"delivery_date,omitempty"`
	DeliveredAt   *time.Time         `json:"delivered_at,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// StatusChangeResponse describes one committed transition.
type StatusChangeResponse struct {
	OrderID         string          `json:"order_id"`
	From            string          `json:"from"`
	To              string          `json:"to"`
	AmountCollected decimal.Decimal `json:"amount_collected"`
	ChangedAt       time.Time       `json:"changed_at"`
}

// StatusResponse answers a single status change. Change is absent when the
// order already had the requested status.
type StatusResponse struct {
	Order  OrderResponse         `json:"order"`
	Change *StatusChangeResponse `json:"change,omitempty"`
}

// BulkStatusResult is the outcome for one order of a bulk change.
type BulkStatusResult struct {
	OrderID string         `json:"order_id"`
	Order   *OrderResponse `json:"order,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

// PhotoResponse carries a stored photo key or a download link.
type PhotoResponse struct {
	Key string `json:"key,omitempty"`
	URL string `json:"url,omitempty"`
}
