package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// ClientRepository describes persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, client model.Client) (*model.Client, error)
	Update(ctx context.Context, client model.Client) (*model.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Client, error)
}
