package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// OrderMutation edits a locked order in place. A non-nil change is appended to the order history.
type OrderMutation func(order *model.Order, catalog model.Catalog) (*model.StatusChange, error)

// OrderRepository describes persistence operations with orders and their line items.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Mutate(ctx context.Context, id uuid.UUID, fn OrderMutation) (*model.Order, *model.StatusChange, error)
	History(ctx context.Context, id uuid.UUID) ([]model.StatusChange, error)
	SetPhoto(ctx context.Context, orderID, itemID uuid.UUID, key string) error
}
